//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package termmode

func newRaw(fd int) Context    { return noopContext{} }
func newCooked(fd int) Context { return noopContext{} }
