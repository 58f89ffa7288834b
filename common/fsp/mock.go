package fsp

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock implementations of the service interfaces for scripting exact call
// sequences and fault injection in tests. For realistic behavior use
// NewMemoryProvider instead.
//
// Example verifying a call is made exactly once:
//
//	fs := &MockFileSystem{}
//	fs.On("CreateFile", FileAttributeNone, int64(0), "/a").Return(nil).Once()
//	... run code under test ...
//	fs.AssertExpectations(t)

type MockProvider struct {
	mock.Mock
}

var _ Provider = &MockProvider{}

func (p *MockProvider) SessionID() uuid.UUID {
	args := p.Called()
	return args.Get(0).(uuid.UUID)
}

func (p *MockProvider) OpenSdCardFileSystem() (FileSystem, error) {
	args := p.Called()
	fs, _ := args.Get(0).(FileSystem)
	return fs, args.Error(1)
}

func (p *MockProvider) Close() error {
	args := p.Called()
	return args.Error(0)
}

type MockFileSystem struct {
	mock.Mock
}

var _ FileSystem = &MockFileSystem{}

func (m *MockFileSystem) CreateFile(attr FileAttribute, size int64, path string) error {
	args := m.Called(attr, size, path)
	return args.Error(0)
}

func (m *MockFileSystem) DeleteFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) CreateDirectory(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) DeleteDirectoryRecursively(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) GetEntryType(path string) (EntryType, error) {
	args := m.Called(path)
	return args.Get(0).(EntryType), args.Error(1)
}

func (m *MockFileSystem) OpenFile(mode OpenMode, path string) (File, error) {
	args := m.Called(mode, path)
	f, _ := args.Get(0).(File)
	return f, args.Error(1)
}

func (m *MockFileSystem) OpenDirectory(mode DirectoryOpenMode, path string) (Directory, error) {
	args := m.Called(mode, path)
	d, _ := args.Get(0).(Directory)
	return d, args.Error(1)
}

type MockFile struct {
	mock.Mock
}

var _ File = &MockFile{}

func (f *MockFile) GetSize() (int64, error) {
	args := f.Called()
	return int64(args.Int(0)), args.Error(1)
}

func (f *MockFile) Read(opt ReadOption, offset int64, buf []byte) (int64, error) {
	args := f.Called(opt, offset, len(buf))
	return int64(args.Int(0)), args.Error(1)
}

func (f *MockFile) Write(opt WriteOption, offset int64, buf []byte) error {
	args := f.Called(opt, offset, len(buf))
	return args.Error(0)
}

type MockDirectory struct {
	mock.Mock
}

var _ Directory = &MockDirectory{}

func (d *MockDirectory) GetEntryCount() (int64, error) {
	args := d.Called()
	return int64(args.Int(0)), args.Error(1)
}

func (d *MockDirectory) Read(entries []DirectoryEntry) (int64, error) {
	args := d.Called(len(entries))
	filled, _ := args.Get(0).([]DirectoryEntry)
	n := copy(entries, filled)
	return int64(n), args.Error(1)
}
