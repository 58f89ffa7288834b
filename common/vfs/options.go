package vfs

import "github.com/proxfs/proxfs-go/common/fsp"

// OpenOption is the bit set accepted by Client.OpenFile.
type OpenOption uint32

const (
	// OpenCreate makes OpenFile create the file if the service reports the
	// path does not exist. It is client-side only and never forwarded to the
	// service.
	OpenCreate OpenOption = 1 << 0
	OpenRead   OpenOption = 1 << 1
	OpenWrite  OpenOption = 1 << 2
	// OpenAppend places the initial cursor at the end of the file.
	OpenAppend OpenOption = 1 << 3
)

// Has reports whether all bits in opt are set.
func (o OpenOption) Has(opt OpenOption) bool {
	return o&opt == opt
}

// openMode translates the caller-facing options into the service access
// mode. OpenCreate has no service-side equivalent and is dropped.
func (o OpenOption) openMode() fsp.OpenMode {
	mode := fsp.OpenModeNone
	if o.Has(OpenRead) {
		mode |= fsp.OpenModeRead
	}
	if o.Has(OpenWrite) {
		mode |= fsp.OpenModeWrite
	}
	if o.Has(OpenAppend) {
		mode |= fsp.OpenModeAppend
	}
	return mode
}
