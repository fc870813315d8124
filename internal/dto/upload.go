package dto

import "io"

// ReadOpener defers opening upload content until validation has passed.
type ReadOpener interface {
	Open() (io.ReadCloser, error)
}

// OpenerFunc adapts a closure to ReadOpener.
type OpenerFunc func() (io.ReadCloser, error)

func (f OpenerFunc) Open() (io.ReadCloser, error) {
	return f()
}
