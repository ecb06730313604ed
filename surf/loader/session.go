package loader

import (
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// session owns one open handle. finish releases it with exactly one of
// Close or Abort: Close when the reads completed, Abort on an error return
// or a panic.
type session struct {
	lib       native.Library
	handle    native.Handle
	path      string
	objects   int
	format    types.FormatType
	completed bool
	log       zerolog.Logger
}

// withSession opens path for reading, runs fn against the handle and
// releases it before returning. No release call is made when open fails.
func withSession(lib native.Library, path string, log zerolog.Logger, fn func(s *session) error) (err error) {
	res, rc := lib.Open(path, types.OpenRead)
	if !rc.IsSuccess() {
		log.Debug().Str("path", path).Stringer("result", rc).Msg("open failed")
		return Error.Wrap(types.NewResultError(string(native.OpOpen), rc))
	}
	s := &session{
		lib:     lib,
		handle:  res.Handle,
		path:    path,
		objects: max(res.Objects, 0),
		format:  res.Format,
		log:     log,
	}
	log.Debug().Str("path", path).Int("objects", s.objects).Stringer("format", s.format).Msg("opened")
	defer s.finish(&err)

	if err := fn(s); err != nil {
		return err
	}
	s.completed = true
	return nil
}

func (s *session) finish(err *error) {
	if s.completed {
		if rc := s.lib.Close(s.handle); !rc.IsSuccess() {
			*err = Error.Wrap(types.NewResultError(string(native.OpClose), rc))
			return
		}
		s.log.Debug().Str("path", s.path).Msg("closed")
		return
	}
	rc := s.lib.Abort(s.handle)
	ev := s.log.Warn().Str("path", s.path).Stringer("abort", rc)
	if *err != nil {
		ev = ev.AnErr("cause", *err)
	}
	ev.Msg("aborted")
}

// check turns a non-success code from op into an error.
func (s *session) check(op native.Op, object int, rc types.ResultCode) error {
	if rc.IsSuccess() {
		return nil
	}
	s.log.Debug().Str("path", s.path).Str("op", string(op)).Int("object", object).Stringer("result", rc).Msg("call failed")
	return Error.Wrap(types.NewResultError(string(op), rc))
}

// readInfo reads the header of a 1-based object index.
func (s *session) readInfo(object int) (types.ObjectInfo, error) {
	info := types.NewObjectInfo()
	rc := s.lib.ReadObjectInfo(s.handle, object, &info)
	return info, s.check(native.OpReadInfo, object, rc)
}
