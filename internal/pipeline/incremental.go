package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/source"
	"github.com/theirongolddev/finpulse/internal/store"
)

// ImportSink is the write side of the record store used by Import.
type ImportSink interface {
	GetTrackedFiles(ctx context.Context) (map[string]store.FileInfo, error)
	SaveImport(ctx context.Context, path string, fi store.FileInfo, batch model.Snapshot) error
}

// ImportResult summarizes one import run.
type ImportResult struct {
	TotalFiles  int
	Unchanged   int
	Imported    int
	Records     int
	ParseErrors int
	FileErrors  int
	Failures    []FileFailure
}

// FileFailure records why a file could not be imported.
type FileFailure struct {
	Path string
	Err  error
}

// ProgressFunc is called during import to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Import discovers JSONL files under root, skips those whose mtime and size
// match the tracker, parses the rest with a bounded worker pool and stores
// each file's records atomically. force re-imports every file.
func Import(ctx context.Context, root string, sink ImportSink, force bool, progressFn ProgressFunc) (*ImportResult, error) {
	files, err := source.ScanDir(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	result := &ImportResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := sink.GetTrackedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading import tracker: %w", err)
	}

	// Diff: partition into changed and unchanged
	var toParse []source.DiscoveredFile
	for _, f := range files {
		prev, ok := tracked[f.Path]
		if !force && ok && prev.Unchanged(f.MtimeNs, f.SizeBytes) {
			result.Unchanged++
			continue
		}
		toParse = append(toParse, f)
	}

	if len(toParse) == 0 {
		return result, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(toParse) {
		numWorkers = len(toParse)
	}

	work := make(chan int, len(toParse))
	results := make([]source.ParseResult, len(toParse))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range toParse {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				if ctx.Err() != nil {
					results[idx] = source.ParseResult{File: toParse[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = source.ParseFile(toParse[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n)+result.Unchanged, result.TotalFiles)
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// SQLite serializes writers anyway, so saving happens on this goroutine.
	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			result.Failures = append(result.Failures, FileFailure{Path: pr.File.Path, Err: pr.Err})
			continue
		}
		fi := store.FileInfo{MtimeNs: pr.File.MtimeNs, SizeBytes: pr.File.SizeBytes, Records: pr.Records}
		if err := sink.SaveImport(ctx, pr.File.Path, fi, pr.Batch); err != nil {
			result.FileErrors++
			result.Failures = append(result.Failures, FileFailure{Path: pr.File.Path, Err: err})
			continue
		}
		result.Imported++
		result.Records += pr.Records
		result.ParseErrors += pr.ParseErrors
	}

	return result, nil
}
