package fsp

import "github.com/google/uuid"

// The use of interfaces is mostly to allow the service to be mocked for
// tests. It also allows applications to swap the remote service for the
// in-process afero implementation without touching the layers above.

// Provider is the session object obtained from the service at initialization
// time. It acts as a factory for the filesystem objects the service manages.
type Provider interface {
	// SessionID returns the identity the service assigned to this session.
	SessionID() uuid.UUID
	// OpenSdCardFileSystem asks the service for the canonical SD card
	// filesystem object.
	OpenSdCardFileSystem() (FileSystem, error)
	// Close releases the session. Objects issued by the session must not be
	// used afterwards.
	Close() error
}

// FileSystem is one filesystem object issued by the service. Paths are
// service-local ("/a/b/c") and never carry a device prefix.
type FileSystem interface {
	// CreateFile creates a file of the given size. Fails with
	// OpsErr_EXISTS if the path already exists.
	CreateFile(attr FileAttribute, size int64, path string) error
	DeleteFile(path string) error
	CreateDirectory(path string) error
	// DeleteDirectoryRecursively removes the directory and everything below
	// it.
	DeleteDirectoryRecursively(path string) error
	// GetEntryType reports whether path is a file or a directory. Fails with
	// OpsErr_PATHNOTEXISTS if there is no such entry.
	GetEntryType(path string) (EntryType, error)
	// OpenFile opens an existing file. Fails with OpsErr_PATHNOTEXISTS if
	// there is no such file; it never creates one.
	OpenFile(mode OpenMode, path string) (File, error)
	OpenDirectory(mode DirectoryOpenMode, path string) (Directory, error)
}

// File is an open file object. The service holds no cursor for it; every
// call carries an explicit offset.
type File interface {
	GetSize() (int64, error)
	// Read reads up to len(buf) bytes starting at offset and returns the
	// number of bytes actually transferred. Reading past the end of the file
	// is not an error and returns a short count.
	Read(opt ReadOption, offset int64, buf []byte) (int64, error)
	// Write writes len(buf) bytes at offset, extending the file if needed.
	// The service protocol does not report a written byte count.
	Write(opt WriteOption, offset int64, buf []byte) error
}

// Directory is an open directory object. Unlike files, the service advances
// an internal position across Read calls so repeated calls return successive
// batches.
type Directory interface {
	GetEntryCount() (int64, error)
	// Read fills entries with the next batch of directory content and
	// returns how many slots were filled. Zero means the listing is
	// exhausted.
	Read(entries []DirectoryEntry) (int64, error)
}
