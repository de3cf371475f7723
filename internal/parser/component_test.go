package parser

import (
	"strings"
	"testing"

	"svlift/internal/ast"
	"svlift/internal/token"
)

// TestResolveDecls_SharedPrefix checks that a component with N triplets
// expands into N variables sharing the direction/type prefix, plus one
// trace marker.
func TestResolveDecls_SharedPrefix(t *testing.T) {
	// input logic [7:0] a, b = 1, c
	toks := []token.Token{
		tDir(ast.DirInput),
		tType(ast.BaseLogic),
		tRange("7", "0"),
		tIdent("a"),
		tComma(),
		tIdent("b"), tAsgn(num("1")),
		tComma(),
		tIdent("c"),
	}
	decls, err := ResolveDecls(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countTraces(decls); got != 1 {
		t.Fatalf("trace markers: got %d, want 1", got)
	}
	vars := variables(t, decls)
	if len(vars) != 3 {
		t.Fatalf("variables: got %d, want 3", len(vars))
	}
	for i, want := range []string{"a", "b", "c"} {
		v := vars[i]
		if v.Name != want {
			t.Errorf("name[%d]: got %q, want %q", i, v.Name, want)
		}
		if v.Dir != ast.DirInput {
			t.Errorf("dir[%d]: got %v, want input", i, v.Dir)
		}
		if got := v.Type.String(); got != "logic [7:0]" {
			t.Errorf("type[%d]: got %q, want %q", i, got, "logic [7:0]")
		}
	}
	if vars[1].Init == nil || vars[1].Init.String() != "1" {
		t.Errorf("init[1]: got %v, want 1", vars[1].Init)
	}
	if vars[0].Init != nil || vars[2].Init != nil {
		t.Errorf("only b should carry an initializer")
	}
}

func TestResolveDecls_TypeResolution(t *testing.T) {
	tests := []struct {
		name     string
		toks     []token.Token
		wantType string
		wantName string
	}{
		{
			name:     "alias type",
			toks:     []token.Token{tIdent("Foo"), tIdent("bar")},
			wantType: "Foo",
			wantName: "bar",
		},
		{
			name:     "scoped alias type",
			toks:     []token.Token{tScoped("pkg", "Foo"), tIdent("bar")},
			wantType: "pkg::Foo",
			wantName: "bar",
		},
		{
			name:     "implicit type single name",
			toks:     []token.Token{tIdent("bar")},
			wantType: "",
			wantName: "bar",
		},
		{
			name:     "base type with signing",
			toks:     []token.Token{tType(ast.BaseLogic), tSigning(ast.SignSigned), tRange("3", "0"), tIdent("x")},
			wantType: "logic signed [3:0]",
			wantName: "x",
		},
		{
			name:     "atom base type",
			toks:     []token.Token{tType(ast.BaseInt), tIdent("x")},
			wantType: "int",
			wantName: "x",
		},
		{
			name:     "signing only",
			toks:     []token.Token{tSigning(ast.SignUnsigned), tRange("1", "0"), tIdent("x")},
			wantType: "unsigned [1:0]",
			wantName: "x",
		},
		{
			name:     "interface type",
			toks:     []token.Token{tIdent("bus_if"), tDot("slave"), tIdent("port_a")},
			wantType: "bus_if.slave",
			wantName: "port_a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, err := ResolveDecls(tt.toks)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			vars := variables(t, decls)
			if len(vars) != 1 {
				t.Fatalf("variables: got %d, want 1", len(vars))
			}
			if got := vars[0].Type.String(); got != tt.wantType {
				t.Errorf("type: got %q, want %q", got, tt.wantType)
			}
			if vars[0].Name != tt.wantName {
				t.Errorf("name: got %q, want %q", vars[0].Name, tt.wantName)
			}
		})
	}
}

func TestResolveDecls_MultipleComponents(t *testing.T) {
	// input a, output b — the comma separates two components
	toks := []token.Token{
		tDir(ast.DirInput), tIdent("a"),
		tComma(),
		tDir(ast.DirOutput), tIdent("b"),
	}
	decls, err := ResolveDecls(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countTraces(decls); got != 2 {
		t.Fatalf("trace markers: got %d, want 2", got)
	}
	vars := variables(t, decls)
	if len(vars) != 2 {
		t.Fatalf("variables: got %d, want 2", len(vars))
	}
	if vars[0].Dir != ast.DirInput || vars[1].Dir != ast.DirOutput {
		t.Errorf("directions: got %v/%v, want input/output", vars[0].Dir, vars[1].Dir)
	}
}

func TestResolveDecls_AutoDim(t *testing.T) {
	t.Run("inferred from pattern", func(t *testing.T) {
		// int arr [] = '{1, 2, 3}
		init := ast.Pattern{Items: []ast.Expr{num("1"), num("2"), num("3")}}
		toks := []token.Token{tType(ast.BaseInt), tIdent("arr"), tAutoDim(), tAsgn(init)}
		decls, err := ResolveDecls(toks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		vars := variables(t, decls)
		if len(vars) != 1 {
			t.Fatalf("variables: got %d, want 1", len(vars))
		}
		if len(vars[0].Dims) != 1 || vars[0].Dims[0].String() != "[0:2]" {
			t.Fatalf("dims: got %v, want [0:2]", vars[0].Dims)
		}
		if vars[0].Init == nil {
			t.Fatal("initializer was dropped")
		}
	})

	t.Run("no initializer leaves size open", func(t *testing.T) {
		toks := []token.Token{tType(ast.BaseInt), tIdent("arr"), tAutoDim()}
		decls, err := ResolveDecls(toks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		vars := variables(t, decls)
		if len(vars[0].Dims) != 0 {
			t.Fatalf("dims: got %v, want none", vars[0].Dims)
		}
	})

	t.Run("non-aggregate initializer leaves size open", func(t *testing.T) {
		toks := []token.Token{tType(ast.BaseInt), tIdent("arr"), tAutoDim(), tAsgn(ref("other"))}
		decls, err := ResolveDecls(toks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		vars := variables(t, decls)
		if len(vars[0].Dims) != 0 {
			t.Fatalf("dims: got %v, want none", vars[0].Dims)
		}
		if vars[0].Init == nil {
			t.Fatal("initializer was dropped")
		}
	})
}

func TestResolveDecls_Lifetime(t *testing.T) {
	t.Run("automatic accepted", func(t *testing.T) {
		toks := []token.Token{tLifetime(ast.LifetimeAutomatic), tType(ast.BaseInt), tIdent("x")}
		if _, err := ResolveDecls(toks); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("static rejected", func(t *testing.T) {
		toks := []token.Token{tLifetime(ast.LifetimeStatic), tType(ast.BaseInt), tIdent("x")}
		_, err := ResolveDecls(toks)
		wantKind(t, err, InvalidQualifier)
	})
}

func TestResolveDecls_Errors(t *testing.T) {
	tests := []struct {
		name string
		toks []token.Token
		kind ErrorKind
	}{
		{
			name: "non-blocking operator in declaration",
			toks: []token.Token{tIdent("x"), tAsgnOp(ast.AsgnNonBlocking, num("1"))},
			kind: InvalidOperator,
		},
		{
			name: "compound operator in declaration",
			toks: []token.Token{tType(ast.BaseInt), tIdent("x"), tAsgnOp(ast.AsgnPlus, num("1"))},
			kind: InvalidOperator,
		},
		{
			name: "trailing separator",
			toks: []token.Token{tType(ast.BaseInt), tIdent("x"), tComma()},
			kind: ShapeMismatch,
		},
		{
			name: "missing name",
			toks: []token.Token{tType(ast.BaseInt)},
			kind: ShapeMismatch,
		},
		{
			name: "stray token after triplet",
			toks: []token.Token{tType(ast.BaseInt), tIdent("x"), tDot("y")},
			kind: ShapeMismatch,
		},
		{
			name: "scoped name in variable position",
			toks: []token.Token{tScoped("pkg", "x"), tAsgn(num("1"))},
			kind: ShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDecls(tt.toks)
			wantKind(t, err, tt.kind)
		})
	}
}

// A scoped identifier classified as a variable name by the typename
// heuristic is not declarable; the error must say so instead of the
// generic "expected declaration name".
func TestResolveDecls_ScopedVariableName(t *testing.T) {
	toks := []token.Token{tScoped("pkg", "x"), tAsgn(num("1"))}
	_, err := ResolveDecls(toks)
	wantKind(t, err, ShapeMismatch)
	if !strings.Contains(err.Error(), "pkg::x") || !strings.Contains(err.Error(), "scoped name") {
		t.Errorf("error should name the scoped identifier: %v", err)
	}
}

func TestResolveDecl_Arity(t *testing.T) {
	t.Run("single component passes", func(t *testing.T) {
		toks := []token.Token{tType(ast.BaseInt), tIdent("x"), tComma(), tIdent("y")}
		decls, err := ResolveDecl(toks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vars := variables(t, decls); len(vars) != 2 {
			t.Fatalf("variables: got %d, want 2", len(vars))
		}
	})
	t.Run("two components fail", func(t *testing.T) {
		toks := []token.Token{
			tDir(ast.DirInput), tIdent("a"),
			tComma(),
			tDir(ast.DirOutput), tIdent("b"),
		}
		_, err := ResolveDecl(toks)
		wantKind(t, err, ArityMismatch)
	})
	t.Run("empty stream fails", func(t *testing.T) {
		_, err := ResolveDecl(nil)
		wantKind(t, err, ArityMismatch)
	})
}
