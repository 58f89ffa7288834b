package fsp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// NewMemoryProvider returns a session over an in-memory service. Each
// provider owns an independent filesystem tree, so tests never interfere
// with each other.
func NewMemoryProvider() Provider {
	return &serviceProvider{
		id: uuid.New(),
		fs: afero.NewMemMapFs(),
	}
}

// NewLocalProvider returns a session whose SD card filesystem is backed by
// the local directory at root. Paths handed to the service stay confined to
// that directory.
func NewLocalProvider(root string) (Provider, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("unable to use %s as a backing root: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("backing root %s is not a directory", root)
	}
	return &serviceProvider{
		id: uuid.New(),
		fs: afero.NewBasePathFs(afero.NewOsFs(), root),
	}, nil
}

type serviceProvider struct {
	id uuid.UUID
	fs afero.Fs

	mu     sync.Mutex
	closed bool
}

func (p *serviceProvider) SessionID() uuid.UUID {
	return p.id
}

func (p *serviceProvider) OpenSdCardFileSystem() (FileSystem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, OpsErr_SESSIONCLOSED
	}
	return &serviceFS{fs: p.fs}, nil
}

func (p *serviceProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

type serviceFS struct {
	fs afero.Fs
}

// mapError translates afero/os errors into the service error codes so the
// layers above only ever observe OpsErr values.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return OpsErr_PATHNOTEXISTS
	case errors.Is(err, os.ErrExist):
		return OpsErr_EXISTS
	default:
		return fmt.Errorf("%w: %w", OpsErr_INTERNAL, err)
	}
}

func (s *serviceFS) CreateFile(attr FileAttribute, size int64, p string) error {
	if _, err := s.fs.Stat(p); err == nil {
		return OpsErr_EXISTS
	} else if !errors.Is(err, os.ErrNotExist) {
		return mapError(err)
	}
	if parent := path.Dir(p); parent != "/" && parent != "." {
		info, err := s.fs.Stat(parent)
		if err != nil {
			return mapError(err)
		}
		if !info.IsDir() {
			return OpsErr_NOTADIR
		}
	}
	f, err := s.fs.Create(p)
	if err != nil {
		return mapError(err)
	}
	if err := f.Truncate(size); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return mapError(errors.Join(err, closeErr))
		}
		return mapError(err)
	}
	return mapError(f.Close())
}

func (s *serviceFS) DeleteFile(p string) error {
	info, err := s.fs.Stat(p)
	if err != nil {
		return mapError(err)
	}
	if info.IsDir() {
		return OpsErr_NOTAFILE
	}
	return mapError(s.fs.Remove(p))
}

func (s *serviceFS) CreateDirectory(p string) error {
	if _, err := s.fs.Stat(p); err == nil {
		return OpsErr_EXISTS
	} else if !errors.Is(err, os.ErrNotExist) {
		return mapError(err)
	}
	if parent := path.Dir(p); parent != "/" && parent != "." {
		info, err := s.fs.Stat(parent)
		if err != nil {
			return mapError(err)
		}
		if !info.IsDir() {
			return OpsErr_NOTADIR
		}
	}
	return mapError(s.fs.Mkdir(p, 0755))
}

func (s *serviceFS) DeleteDirectoryRecursively(p string) error {
	info, err := s.fs.Stat(p)
	if err != nil {
		return mapError(err)
	}
	if !info.IsDir() {
		return OpsErr_NOTADIR
	}
	return mapError(s.fs.RemoveAll(p))
}

func (s *serviceFS) GetEntryType(p string) (EntryType, error) {
	info, err := s.fs.Stat(p)
	if err != nil {
		return 0, mapError(err)
	}
	if info.IsDir() {
		return EntryTypeDirectory, nil
	}
	return EntryTypeFile, nil
}

func (s *serviceFS) OpenFile(mode OpenMode, p string) (File, error) {
	info, err := s.fs.Stat(p)
	if err != nil {
		return nil, mapError(err)
	}
	if info.IsDir() {
		return nil, OpsErr_NOTAFILE
	}
	// The access mode is enforced per call in Read/Write rather than with
	// open flags so GetSize keeps working on write-only opens.
	f, err := s.fs.OpenFile(p, os.O_RDWR, 0)
	if err != nil {
		return nil, mapError(err)
	}
	return &serviceFile{f: f, mode: mode}, nil
}

func (s *serviceFS) OpenDirectory(mode DirectoryOpenMode, p string) (Directory, error) {
	info, err := s.fs.Stat(p)
	if err != nil {
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, OpsErr_NOTADIR
	}
	infos, err := afero.ReadDir(s.fs, p)
	if err != nil {
		return nil, mapError(err)
	}
	entries := make([]DirectoryEntry, 0, len(infos))
	for _, fi := range infos {
		if fi.IsDir() && !mode.Has(DirectoryOpenDirectories) {
			continue
		}
		if !fi.IsDir() && !mode.Has(DirectoryOpenFiles) {
			continue
		}
		entry := DirectoryEntry{Name: fi.Name(), Type: EntryTypeFile, Size: fi.Size()}
		if fi.IsDir() {
			entry.Type = EntryTypeDirectory
			entry.Size = 0
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return &serviceDirectory{entries: entries}, nil
}

type serviceFile struct {
	f    afero.File
	mode OpenMode
}

func (f *serviceFile) GetSize() (int64, error) {
	info, err := f.f.Stat()
	if err != nil {
		return 0, mapError(err)
	}
	return info.Size(), nil
}

func (f *serviceFile) Read(opt ReadOption, offset int64, buf []byte) (int64, error) {
	if !f.mode.Has(OpenModeRead) {
		return 0, OpsErr_NOTSUPP
	}
	if offset < 0 {
		return 0, OpsErr_OUTOFRANGE
	}
	n, err := f.f.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return int64(n), mapError(err)
	}
	return int64(n), nil
}

func (f *serviceFile) Write(opt WriteOption, offset int64, buf []byte) error {
	if !f.mode.Has(OpenModeWrite) && !f.mode.Has(OpenModeAppend) {
		return OpsErr_NOTSUPP
	}
	if offset < 0 {
		return OpsErr_OUTOFRANGE
	}
	if _, err := f.f.WriteAt(buf, offset); err != nil {
		return mapError(err)
	}
	if opt.Has(WriteOptionFlush) {
		return mapError(f.f.Sync())
	}
	return nil
}

type serviceDirectory struct {
	entries []DirectoryEntry
	pos     int
}

func (d *serviceDirectory) GetEntryCount() (int64, error) {
	return int64(len(d.entries)), nil
}

func (d *serviceDirectory) Read(entries []DirectoryEntry) (int64, error) {
	n := copy(entries, d.entries[d.pos:])
	d.pos += n
	return int64(n), nil
}
