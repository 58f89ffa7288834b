package vfs

import "errors"

var (
	ErrNotInitialized = errors.New("operation not possible before the client is initialized")
	ErrInvalidPath    = errors.New("path does not contain any usable segments")
	ErrDeviceNotFound = errors.New("no mounted device matches the root segment of the path")
)
