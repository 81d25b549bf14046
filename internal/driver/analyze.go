// Package driver runs batch analysis over files and directories for the CLI.
// The language server never goes through this path; it keeps everything in
// memory, while the driver may persist results in a content-addressed disk
// cache.
package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"coral66/internal/analysis"
	"coral66/internal/diag"
	"coral66/internal/source"
)

// Options tunes a batch run.
type Options struct {
	MaxDiagnostics int
	Jobs           int          // 0 means one worker per CPU
	Cache          *DiskCache   // nil disables the disk cache
	Progress       ProgressSink // nil disables progress events
}

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path           string
	Digest         Digest
	File           *source.File
	Bag            *diag.Bag
	SymbolCount    int
	ReferenceCount int
	FromCache      bool
	Snapshot       *analysis.Snapshot // nil when served from cache
	Err            error              // set when the file could not be read
}

// ListSourceFiles resolves root to the sorted list of files to analyze.
// A file argument is taken as-is; a directory is walked for *.cor and *.c66.
func ListSourceFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".cor") || strings.HasSuffix(path, ".c66") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeAll analyzes every file in parallel. Results keep the input order
// regardless of completion order. Per-file failures land in the result's Err;
// the returned error reports only cancellation.
func AnalyzeAll(ctx context.Context, files []string, opts Options) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, so no mutex around results.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Progress, path, StageAnalyze, StatusWorking, nil, 0)
			started := time.Now()

			res := analyzeOne(path, opts)
			results[i] = res

			status := StatusDone
			switch {
			case res.Err != nil:
				status = StatusError
			case res.FromCache:
				status = StatusCached
			}
			emit(opts.Progress, path, StageAnalyze, status, res.Err, time.Since(started))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func analyzeOne(path string, opts Options) FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	digest := HashContent(content)

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(digest, &payload); err == nil && hit {
			file := source.NewVirtualFile(path, content)
			return FileResult{
				Path:           path,
				Digest:         digest,
				File:           file,
				Bag:            payloadToBag(&payload, file.ID, opts.MaxDiagnostics),
				SymbolCount:    int(payload.SymbolCount),
				ReferenceCount: int(payload.ReferenceCount),
				FromCache:      true,
			}
		}
	}

	snap := analysis.Analyze(path, content, analysis.Options{MaxDiagnostics: opts.MaxDiagnostics})

	if opts.Cache != nil {
		// A failed write only costs the next run a recompute.
		_ = opts.Cache.Put(digest, snapshotToPayload(path, digest, snap))
	}

	return FileResult{
		Path:           path,
		Digest:         digest,
		File:           snap.File,
		Bag:            snap.Bag,
		SymbolCount:    snap.Table.Symbols.Len(),
		ReferenceCount: len(snap.Refs),
		Snapshot:       snap,
	}
}
