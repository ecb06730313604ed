//go:build surfapi && windows

package native

import "syscall"

// purego has no Dlopen on Windows; the DLL is loaded by the system and
// its exports are registered with purego.RegisterFunc like on Unix.

func openLibrary(path string) (uintptr, error) {
	h, err := syscall.LoadLibrary(path)
	return uintptr(h), err
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return syscall.GetProcAddress(syscall.Handle(lib), name)
}

func closeLibrary(lib uintptr) error {
	return syscall.FreeLibrary(syscall.Handle(lib))
}
