package fsp

// EntryType describes what kind of entry a path points at.
type EntryType uint32

const (
	EntryTypeDirectory EntryType = 0
	EntryTypeFile      EntryType = 1
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// FileAttribute is passed to CreateFile. The service currently only
// distinguishes plain files from concatenation files.
type FileAttribute uint32

const (
	FileAttributeNone              FileAttribute = 0
	FileAttributeConcatenationFile FileAttribute = 1
)

// OpenMode is the access-mode bit set understood by FileSystem.OpenFile.
type OpenMode uint32

const (
	OpenModeNone   OpenMode = 0
	OpenModeRead   OpenMode = 1 << 0
	OpenModeWrite  OpenMode = 1 << 1
	OpenModeAppend OpenMode = 1 << 2
)

// Has reports whether all bits in mode are set.
func (m OpenMode) Has(mode OpenMode) bool {
	return m&mode == mode
}

// DirectoryOpenMode filters which entry kinds OpenDirectory will report.
type DirectoryOpenMode uint32

const (
	DirectoryOpenDirectories DirectoryOpenMode = 1 << 0
	DirectoryOpenFiles       DirectoryOpenMode = 1 << 1
	DirectoryOpenAll         DirectoryOpenMode = DirectoryOpenDirectories | DirectoryOpenFiles
)

// Has reports whether all bits in mode are set.
func (m DirectoryOpenMode) Has(mode DirectoryOpenMode) bool {
	return m&mode == mode
}

// ReadOption modifies File.Read behavior. No options are currently defined by
// the service protocol.
type ReadOption uint32

const (
	ReadOptionNone ReadOption = 0
)

// WriteOption modifies File.Write behavior.
type WriteOption uint32

const (
	WriteOptionNone WriteOption = 0
	// WriteOptionFlush asks the service to sync the write to storage before
	// replying.
	WriteOptionFlush WriteOption = 1 << 0
)

// Has reports whether all bits in opt are set.
func (o WriteOption) Has(opt WriteOption) bool {
	return o&opt == opt
}

// DirectoryEntry is one item of directory content as reported by the service.
type DirectoryEntry struct {
	Name string
	Type EntryType
	Size int64
}
