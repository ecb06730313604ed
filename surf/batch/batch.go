// Package batch loads many files concurrently, one loader per file.
package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/ZanzyTHEbar/surfapi-go/surf/loader"
	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// Result is the outcome for one path.
type Result struct {
	Path        string
	Collections []*types.Collection
	Format      types.FormatType
	Err         error
	Elapsed     time.Duration
}

// Loader fans paths out over a bounded pool. The library must support
// independent concurrent handles.
type Loader struct {
	Library native.Library
	Workers int // defaults to runtime.NumCPU()
	Logger  zerolog.Logger
}

// LoadAll loads every path and returns results in input order. Paths not
// started before ctx is done get ctx.Err(). A load already running is
// not interrupted.
func (b *Loader) LoadAll(ctx context.Context, paths []string) []Result {
	workers := b.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	runID := uuid.New()
	log := b.Logger.With().Str("run", runID.String()).Logger()
	log.Debug().Int("files", len(paths)).Int("workers", workers).Msg("batch started")

	results := make([]Result, len(paths))
	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			results[i] = b.loadOne(ctx, path, log)
			return nil
		})
	}
	// tasks never fail; errors live in the results
	_ = p.Wait()

	s := Summarize(results)
	log.Debug().Int("failed", s.Failed).Int("objects", s.Objects).Msg("batch finished")
	return results
}

func (b *Loader) loadOne(ctx context.Context, path string, log zerolog.Logger) Result {
	res := Result{Path: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	l := loader.NewStudiableLoader(b.Library, path, loader.WithLogger(log))
	res.Collections, res.Err = l.Load()
	res.Format = l.Format()
	res.Elapsed = time.Since(start)
	if res.Err != nil {
		log.Warn().Str("path", path).Err(res.Err).Msg("load failed")
	}
	return res
}

// Summary counts a batch.
type Summary struct {
	Files   int
	Failed  int
	Objects int
	Skipped int // objects whose text could not be decoded
}

func Summarize(results []Result) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		for _, c := range r.Collections {
			if c == nil {
				s.Skipped++
				continue
			}
			s.Objects++
		}
	}
	return s
}
