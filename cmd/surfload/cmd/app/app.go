// Package app carries the loaded configuration and shared handles between
// the root command and its subcommands.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/surfapi-go/surf/batch"
	"github.com/ZanzyTHEbar/surfapi-go/surf/catalog"
	"github.com/ZanzyTHEbar/surfapi-go/surf/config"
	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	"github.com/ZanzyTHEbar/surfapi-go/surf/scan"
)

// ErrPartial marks a run where some files failed and the rest succeeded.
var ErrPartial = errors.New("some files failed")

type ctxKey struct{}

// OpenLibraryFunc yields a vendor library and the function that releases it.
type OpenLibraryFunc func(path string) (native.Library, func() error, error)

// Env is what every subcommand runs against.
type Env struct {
	Config *config.Config
	Logger zerolog.Logger

	// OpenLibrary defaults to the native binding. Tests swap in a mock.
	OpenLibrary OpenLibraryFunc
}

// NativeLibrary loads the vendor shared object.
func NativeLibrary(path string) (native.Library, func() error, error) {
	api, err := native.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return api, api.Release, nil
}

// Library opens the configured vendor library.
func (e *Env) Library() (native.Library, func() error, error) {
	open := e.OpenLibrary
	if open == nil {
		open = NativeLibrary
	}
	lib, release, err := open(e.Config.Library.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load surfapi library: %w", err)
	}
	return lib, release, nil
}

// Catalog opens the configured catalog database.
func (e *Env) Catalog() (*catalog.Store, error) {
	return catalog.Open(e.Config.Catalog.DSN, e.Logger)
}

// ScanOptions returns the configured scan settings.
func (e *Env) ScanOptions() scan.Options {
	return scan.Options{
		Extensions: e.Config.Scan.Extensions,
		IgnoreFile: e.Config.Scan.IgnoreFile,
		Recursive:  e.Config.Scan.Recursive,
	}
}

func (e *Env) BatchLoader(lib native.Library) *batch.Loader {
	return &batch.Loader{Library: lib, Workers: e.Config.Batch.Workers, Logger: e.Logger}
}

// BatchErr is nil when every file of a batch loaded.
func BatchErr(s batch.Summary) error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrPartial, s.Failed, s.Files)
}

// Require fetches the Env installed by the root command.
func Require(ctx context.Context) (*Env, error) {
	env, ok := FromContext(ctx)
	if !ok {
		return nil, errors.New("failed to get environment from context")
	}
	return env, nil
}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

func FromContext(ctx context.Context) (*Env, bool) {
	env, ok := ctx.Value(ctxKey{}).(*Env)
	return env, ok && env != nil
}
