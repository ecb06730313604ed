// Package loader drives the vendor library through its read protocol:
// open, read every object, then close, or abort on any failure.
package loader

import (
	"errors"

	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// StudiableLoader loads every object of one file: header, comment and
// point grid. A loader loads at most once; use a new instance to retry.
//
// A StudiableLoader is not safe for concurrent use. Distinct loaders may
// run concurrently against the same library.
type StudiableLoader struct {
	lib    native.Library
	path   string
	opts   options
	format types.FormatType
	cache  lifecycle[*types.Collection]
}

func NewStudiableLoader(lib native.Library, path string, opts ...Option) *StudiableLoader {
	return &StudiableLoader{
		lib:   lib,
		path:  path,
		opts:  buildOptions(opts),
		cache: lifecycle[*types.Collection]{clone: types.CloneAll},
	}
}

// Path is the file this loader reads.
func (l *StudiableLoader) Path() string { return l.path }

// State reports the lifecycle state.
func (l *StudiableLoader) State() State { return l.cache.state }

// Format is the format family reported by open, once loading has started.
func (l *StudiableLoader) Format() types.FormatType { return l.format }

// Err is the failure that moved the loader to StateFailed.
func (l *StudiableLoader) Err() error { return l.cache.err }

// Load returns one entry per object, in object order. An entry is nil when
// the object's text could not be decoded; the rest of the load proceeds.
// The result is a copy; the first successful result is cached and the
// library is not called again.
func (l *StudiableLoader) Load() ([]*types.Collection, error) {
	return l.cache.run(l.load)
}

// LoadedData returns a copy of the cached result, or nil unless a Load
// has succeeded.
func (l *StudiableLoader) LoadedData() []*types.Collection {
	return l.cache.loaded()
}

func (l *StudiableLoader) load() ([]*types.Collection, error) {
	var out []*types.Collection
	err := withSession(l.lib, l.path, l.opts.logger, func(s *session) error {
		l.format = s.format
		out = make([]*types.Collection, s.objects)
		for i := range out {
			c, err := l.readObject(s, i+1)
			if err != nil {
				return err
			}
			out[i] = c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// readObject returns a nil collection and no error when only text decoding
// failed.
func (l *StudiableLoader) readObject(s *session, object int) (*types.Collection, error) {
	info, err := s.readInfo(object)
	if err != nil {
		return nil, err
	}

	comment := []byte{}
	if n := info.CommentLen(); n > 0 {
		comment = make([]byte, n)
		rc := l.lib.ReadObjectComment(s.handle, object, comment)
		if err := s.check(native.OpReadComment, object, rc); err != nil {
			return nil, err
		}
	}

	pts := []int32{}
	if n := info.PointCount(); n > 0 {
		pts = make([]int32, n)
		rc := l.lib.ReadObjectPoints(s.handle, object, pts)
		if err := s.check(native.OpReadPoints, object, rc); err != nil {
			return nil, err
		}
	}

	c, err := types.NewCollection(info, comment, pts)
	if err != nil {
		if errors.Is(err, ErrInvalidText) {
			l.opts.logger.Warn().Str("path", l.path).Int("object", object).Err(err).Msg("object skipped")
			return nil, nil
		}
		return nil, Error.Wrap(err)
	}
	l.opts.logger.Debug().
		Str("path", l.path).
		Int("object", object).
		Stringer("kind", c.Metadata.Kind).
		Int("points", len(pts)).
		Int("comment", len(comment)).
		Msg("object read")
	return c, nil
}
