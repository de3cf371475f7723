package driver

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"svlift/internal/ast"
	"svlift/internal/diag"
	"svlift/internal/fixture"
	"svlift/internal/parser"
	"svlift/internal/source"
	"svlift/internal/token"
)

// StreamResult is the outcome of resolving one fixture stream. Exactly
// one of the payload groups is populated, matching the context.
type StreamResult struct {
	Name    string
	Context fixture.Context
	Tokens  []token.Token

	Ports []string
	Items []ast.ModuleItem
	Decls []ast.Decl
	Stmts []ast.Stmt
	Asgns []parser.ForAsgn

	Failed bool
}

// FileResult is the outcome of resolving one fixture file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Streams []StreamResult
	Bag     *diag.Bag
}

// HasErrors reports whether any stream failed to resolve.
func (r *FileResult) HasErrors() bool {
	return r.Bag.HasErrors()
}

// kindCode maps resolver error kinds to diagnostic codes.
func kindCode(kind parser.ErrorKind) diag.Code {
	switch kind {
	case parser.ShapeMismatch:
		return diag.ResShapeMismatch
	case parser.InvalidOperator:
		return diag.ResInvalidOperator
	case parser.ArityMismatch:
		return diag.ResArityMismatch
	case parser.BadTarget:
		return diag.ResBadTarget
	case parser.InvalidQualifier:
		return diag.ResInvalidQualifier
	default:
		return diag.UnknownCode
	}
}

// elabCodes maps severity task names to diagnostic codes. $info never
// reaches the items, the resolver drops it.
var elabCodes = map[string]diag.Code{
	"$warning": diag.ElabWarning,
	"$error":   diag.ElabError,
	"$fatal":   diag.ElabFatal,
}

func elabSeverity(code diag.Code) diag.Severity {
	if code == diag.ElabWarning {
		return diag.SevWarning
	}
	return diag.SevError
}

// ResolveFile loads one fixture file and resolves all of its streams.
// Resolution problems land in the result's bag; only IO and fixture
// syntax failures return an error.
func ResolveFile(fileSet *source.FileSet, path string, maxDiagnostics int) (*FileResult, error) {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	f, err := fixture.Parse(fileSet.Get(fileID).Content)
	if err != nil {
		return nil, err
	}
	return resolveStreams(fileSet, path, fileID, f, maxDiagnostics)
}

// ResolveVirtual resolves fixture contents that are not backed by a
// file, e.g. stdin.
func ResolveVirtual(fileSet *source.FileSet, name string, content []byte, maxDiagnostics int) (*FileResult, error) {
	f, err := fixture.Parse(content)
	if err != nil {
		return nil, err
	}
	fileID := fileSet.AddVirtual(name, content)
	return resolveStreams(fileSet, name, fileID, f, maxDiagnostics)
}

func resolveStreams(fileSet *source.FileSet, path string, fileID source.FileID, f *fixture.File, maxDiagnostics int) (*FileResult, error) {
	result := &FileResult{
		Path:   path,
		FileID: fileID,
		Bag:    diag.NewBag(maxDiagnostics),
	}
	// Streams in one file often trip over the same problem (e.g. the
	// same elaboration task repeated); report each distinct one once.
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: result.Bag})

	for _, stream := range f.Streams {
		ctx, ok := fixture.ParseContext(stream.Context)
		if !ok {
			diag.ReportError(reporter, diag.DecUnknownContext,
				source.Span{File: fileID},
				fmt.Sprintf("unknown resolve context %q", stream.Context))
			result.Streams = append(result.Streams, StreamResult{Name: stream.Name, Failed: true})
			continue
		}
		sr := resolveStream(stream, ctx, fileID, reporter)
		result.Streams = append(result.Streams, sr)
	}
	return result, nil
}

func resolveStream(stream fixture.Stream, ctx fixture.Context, fileID source.FileID, reporter diag.Reporter) StreamResult {
	sr := StreamResult{Name: stream.Name, Context: ctx}

	toks, err := stream.Decode(fileID)
	if err != nil {
		sr.Failed = true
		var derr *fixture.DecodeError
		if errors.As(err, &derr) {
			start, convErr := safecast.Conv[uint32](derr.Index)
			if convErr != nil {
				start = 0
			}
			diag.ReportError(reporter, derr.Code,
				source.Span{File: fileID, Start: start, End: start + 1},
				derr.Error())
			return sr
		}
		diag.ReportError(reporter, diag.DecBadTokenForm, source.Span{File: fileID}, err.Error())
		return sr
	}
	sr.Tokens = toks

	var rerr error
	switch ctx {
	case fixture.ContextPortDecls:
		sr.Ports, sr.Items, rerr = parser.ResolvePortDecls(toks)
	case fixture.ContextModuleItems:
		sr.Items, rerr = parser.ResolveModuleItems(toks)
	case fixture.ContextDecls:
		sr.Decls, rerr = parser.ResolveDecls(toks)
	case fixture.ContextDecl:
		sr.Decls, rerr = parser.ResolveDecl(toks)
	case fixture.ContextDeclOrStmt:
		sr.Decls, sr.Stmts, rerr = parser.ResolveDeclOrStmt(toks)
	case fixture.ContextForInit:
		sr.Decls, sr.Asgns, rerr = parser.ResolveDeclsOrAsgns(toks)
	}

	if rerr != nil {
		sr.Failed = true
		var perr *parser.Error
		if errors.As(rerr, &perr) {
			diag.ReportError(reporter, kindCode(perr.Kind), perr.Span, perr.Msg)
		} else {
			diag.ReportError(reporter, diag.UnknownCode, source.Span{File: fileID}, rerr.Error())
		}
		return sr
	}

	reportElabTasks(sr.Items, reporter)
	return sr
}

// reportElabTasks surfaces synthesized severity task instances as
// diagnostics so a batch run shows them without inspecting the items.
func reportElabTasks(items []ast.ModuleItem, reporter diag.Reporter) {
	for _, item := range items {
		inst, ok := item.(ast.Instance)
		if !ok {
			continue
		}
		code, ok := elabCodes[inst.Module]
		if !ok {
			continue
		}
		msg := inst.Module
		if len(inst.Ports) > 0 {
			msg += " " + inst.Ports[0].String()
		}
		reporter.Report(code, elabSeverity(code), source.Span{}, msg, nil)
	}
}
