package loader

import (
	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// SurfaceLoader reads only the object headers of a file. It follows the
// same protocol and caching rules as StudiableLoader.
type SurfaceLoader struct {
	lib   native.Library
	path  string
	opts  options
	cache lifecycle[types.ObjectInfo]
}

func NewSurfaceLoader(lib native.Library, path string, opts ...Option) *SurfaceLoader {
	return &SurfaceLoader{
		lib:   lib,
		path:  path,
		opts:  buildOptions(opts),
		cache: lifecycle[types.ObjectInfo]{clone: cloneInfos},
	}
}

func cloneInfos(in []types.ObjectInfo) []types.ObjectInfo {
	if in == nil {
		return nil
	}
	out := make([]types.ObjectInfo, len(in))
	copy(out, in)
	return out
}

func (l *SurfaceLoader) Path() string { return l.path }
func (l *SurfaceLoader) State() State { return l.cache.state }
func (l *SurfaceLoader) Err() error   { return l.cache.err }

// Load returns the header of every object, in object order.
func (l *SurfaceLoader) Load() ([]types.ObjectInfo, error) {
	return l.cache.run(l.load)
}

// Surfaces returns a copy of the cached headers, or nil unless a Load has
// succeeded.
func (l *SurfaceLoader) Surfaces() []types.ObjectInfo {
	return l.cache.loaded()
}

func (l *SurfaceLoader) load() ([]types.ObjectInfo, error) {
	var out []types.ObjectInfo
	err := withSession(l.lib, l.path, l.opts.logger, func(s *session) error {
		out = make([]types.ObjectInfo, s.objects)
		for i := range out {
			info, err := s.readInfo(i + 1)
			if err != nil {
				return err
			}
			out[i] = info
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
