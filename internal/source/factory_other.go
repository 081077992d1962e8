//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package source

func newDefault(opts Options) (Source, error) {
	return NewPipeWithOptions(opts.Parser), nil
}
