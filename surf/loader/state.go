package loader

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// Error is the class of every error a loader returns.
var Error = errs.Class("studiable loader")

var (
	// ErrLoadInProgress is returned by a Load issued while another is running.
	ErrLoadInProgress = errors.New("load already in progress")
	// ErrLoadFailed is returned by every Load after the first one failed.
	// It wraps the original failure.
	ErrLoadFailed = errors.New("load failed")
	// ErrInvalidText marks a header field or comment that is not UTF-8.
	ErrInvalidText = types.ErrInvalidText

	errPanicked = errors.New("load panicked")
)

// State is the lifecycle of a loader.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Option configures a loader.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for protocol tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// lifecycle is the one-shot load cache shared by the loaders. It is not
// safe for concurrent use.
type lifecycle[T any] struct {
	state State
	data  []T
	err   error
	clone func([]T) []T
}

// run performs load at most once. Later calls return a copy of the cached
// result or the recorded failure.
func (c *lifecycle[T]) run(load func() ([]T, error)) ([]T, error) {
	switch c.state {
	case StateLoaded:
		return c.clone(c.data), nil
	case StateLoading:
		return nil, Error.Wrap(ErrLoadInProgress)
	case StateFailed:
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, c.err)
	}

	c.state = StateLoading
	defer func() {
		// still Loading here only if load panicked
		if c.state == StateLoading {
			c.state = StateFailed
			c.err = errPanicked
		}
	}()

	data, err := load()
	if err != nil {
		c.state = StateFailed
		c.err = err
		return nil, err
	}
	c.data = data
	c.state = StateLoaded
	return c.clone(data), nil
}

// loaded returns a copy of the cache, or nil unless the load succeeded.
func (c *lifecycle[T]) loaded() []T {
	if c.state != StateLoaded {
		return nil
	}
	return c.clone(c.data)
}
