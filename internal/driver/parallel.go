package driver

import (
	"context"
	"crypto/sha256"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"svlift/internal/diagfmt"
	"svlift/internal/source"
)

// Options controls a driver run.
type Options struct {
	MaxDiagnostics int
	Jobs           int        // 0 means GOMAXPROCS
	ShowTraces     bool
	Cache          *DiskCache // nil disables caching
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultConfig().Resolve.MaxDiagnostics
	}
	return o.MaxDiagnostics
}

// DirResult is the rendered outcome for one fixture file in a
// directory run.
type DirResult struct {
	Path      string
	Rendered  string
	DiagLines string
	HasErrors bool
	FromCache bool
}

// listFixtureFiles returns all *.toml fixture files under dir, sorted
// for deterministic order. The svlift.toml manifest is not a fixture.
func listFixtureFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".toml") {
			return nil
		}
		if filepath.Base(path) == ConfigFileName {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ResolveDir resolves every fixture file under dir in parallel.
// Results come back in the files' sorted order regardless of worker
// scheduling.
func ResolveDir(ctx context.Context, dir string, opts Options) ([]DirResult, error) {
	files, err := listFixtureFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := resolveOne(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolveOne resolves a single file, consulting the cache first.
func resolveOne(path string, opts Options) (DirResult, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- paths come from the walked directory
	if err != nil {
		return DirResult{}, err
	}
	key := sha256.Sum256(content)

	if opts.Cache != nil {
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err == nil && ok {
			return DirResult{
				Path:      path,
				Rendered:  payload.Rendered,
				DiagLines: payload.DiagLines,
				HasErrors: payload.HasErrors,
				FromCache: true,
			}, nil
		}
		// A corrupt entry is not fatal; resolve and overwrite it.
	}

	fileSet := source.NewFileSet()
	res, err := ResolveVirtual(fileSet, path, content, opts.maxDiagnostics())
	if err != nil {
		return DirResult{}, err
	}
	res.Bag.Sort()

	var diags strings.Builder
	diagfmt.Short(&diags, res.Bag, fileSet)

	out := DirResult{
		Path:      path,
		Rendered:  RenderResultString(res, opts.ShowTraces),
		DiagLines: diags.String(),
		HasErrors: res.HasErrors(),
	}
	if opts.Cache != nil {
		payload := &DiskPayload{
			Schema:      diskCacheSchemaVersion,
			Path:        path,
			ContentHash: key,
			Rendered:    out.Rendered,
			DiagLines:   out.DiagLines,
			HasErrors:   out.HasErrors,
		}
		// Cache write failures only cost the next run time.
		_ = opts.Cache.Put(key, payload)
	}
	return out, nil
}
