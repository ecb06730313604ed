package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// LibraryEnv overrides the library location when no explicit path is given.
const LibraryEnv = "SURFAPI_LIBRARY"

// libraryNames are the file names tried in each search directory.
func libraryNames(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"libsurfapi.dylib", "SurfAPI.dylib"}
	case "windows":
		return []string{"SurfAPI.dll", "surfapi.dll"}
	default:
		return []string{"libsurfapi.so", "SurfAPI.so"}
	}
}

// ResolveLibraryPath locates the vendor shared object.
//
// An explicit path must exist. Otherwise LibraryEnv is consulted, then
// each directory in dirs is searched for the platform's library names.
func ResolveLibraryPath(explicit string, dirs ...string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, explicit, err)
		}
		return explicit, nil
	}
	if env := os.Getenv(LibraryEnv); env != "" {
		return ResolveLibraryPath(env)
	}
	for _, dir := range dirs {
		for _, name := range libraryNames(runtime.GOOS) {
			p := filepath.Join(dir, name)
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%w: searched %v", ErrLibraryNotFound, dirs)
}
