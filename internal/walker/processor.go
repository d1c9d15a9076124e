// Package walker handles directory traversal and file reading
package walker

import (
	"fmt"
	"os"
	"sync"
)

// readFile reads one admitted file, enforcing the size limit when one
// is configured. Failures are tracked and returned; the caller decides
// how to surface them.
func readFile(e entry, options WalkOptions, tracker *SkippedTracker) ([]byte, error) {
	options.Logger.Debug("readFile: Reading [%s]", e.relativePath)

	// Only stat when a size limit is configured
	if options.MaxFileSize > 0 {
		info, err := os.Lstat(e.path)
		if err != nil {
			options.Logger.Error("readFile Error [%s]: Failed to get file info: %v", e.relativePath, err)
			tracker.Track(e.relativePath, ReasonSkippedInfoError, false)
			return nil, fmt.Errorf("failed to get file info: %w", err)
		}

		if info.Size() > options.MaxFileSize {
			options.Logger.Debug("readFile Skipping [%s]: Exceeds size limit (%d > %d bytes)",
				e.relativePath, info.Size(), options.MaxFileSize)
			tracker.Track(e.relativePath, ReasonSkippedSizeLimit, false)
			return nil, fmt.Errorf("file size %d exceeds limit %d bytes", info.Size(), options.MaxFileSize)
		}
	}

	content, err := os.ReadFile(e.path)
	if err != nil {
		options.Logger.Error("readFile Error [%s]: Failed to read file: %v", e.relativePath, err)
		tracker.Track(e.relativePath, ReasonSkippedReadError, false)
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	options.Logger.Debug("readFile Success [%s]: Read %d bytes", e.relativePath, len(content))
	return content, nil
}

// readConcurrent reads admitted files on a worker pool but delivers
// them to walkFn strictly in admission order: results are buffered
// per index and flushed in order, never in completion order.
func readConcurrent(admitted []entry, options WalkOptions, walkFn WalkFunc, tracker *SkippedTracker) {
	type result struct {
		content []byte
		err     error
	}
	results := make([]result, len(admitted))

	workers := options.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(admitted) {
		workers = len(admitted)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	options.Logger.Debug("readConcurrent: Starting %d workers for %d files", workers, len(admitted))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				content, err := readFile(admitted[i], options, tracker)
				results[i] = result{content: content, err: err}
			}
		}()
	}

	for i := range admitted {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, e := range admitted {
		deliver(walkFn, e, results[i].content, results[i].err, options)
	}
}

// deliver hands one read result to the callback. Callback errors are
// logged; they never abort the walk.
func deliver(walkFn WalkFunc, e entry, content []byte, err error, options WalkOptions) {
	if cbErr := walkFn(e.relativePath, content, err); cbErr != nil {
		options.Logger.Error("walker: Callback failed for %q: %v", e.relativePath, cbErr)
	}
}
