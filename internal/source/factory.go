package source

// New returns the best input source for this process: the terminal on
// stdin when there is one, the controlling terminal when stdin is
// redirected, and an inert pipe source as the last resort so callers
// always receive a working Source.
func New(opts Options) (Source, error) {
	return newDefault(opts)
}
