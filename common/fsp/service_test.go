package fsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T) FileSystem {
	provider := NewMemoryProvider()
	fs, err := provider.OpenSdCardFileSystem()
	require.NoError(t, err)
	return fs
}

func TestProviderSessionLifecycle(t *testing.T) {
	provider := NewMemoryProvider()
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", provider.SessionID().String())

	_, err := provider.OpenSdCardFileSystem()
	require.NoError(t, err)

	require.NoError(t, provider.Close())
	_, err = provider.OpenSdCardFileSystem()
	assert.ErrorIs(t, err, OpsErr_SESSIONCLOSED)
}

func TestCreateAndDeleteFile(t *testing.T) {
	fs := newTestFS(t)

	require.NoError(t, fs.CreateFile(FileAttributeNone, 64, "/data.bin"))
	assert.ErrorIs(t, fs.CreateFile(FileAttributeNone, 0, "/data.bin"), OpsErr_EXISTS)

	entryType, err := fs.GetEntryType("/data.bin")
	require.NoError(t, err)
	assert.Equal(t, EntryTypeFile, entryType)

	// The requested size preallocates the file.
	f, err := fs.OpenFile(OpenModeRead, "/data.bin")
	require.NoError(t, err)
	size, err := f.GetSize()
	require.NoError(t, err)
	assert.EqualValues(t, 64, size)

	require.NoError(t, fs.DeleteFile("/data.bin"))
	assert.ErrorIs(t, fs.DeleteFile("/data.bin"), OpsErr_PATHNOTEXISTS)
}

func TestCreateFileRequiresParent(t *testing.T) {
	fs := newTestFS(t)
	assert.ErrorIs(t, fs.CreateFile(FileAttributeNone, 0, "/no/parent"), OpsErr_PATHNOTEXISTS)
	assert.ErrorIs(t, fs.CreateDirectory("/no/parent"), OpsErr_PATHNOTEXISTS)
}

func TestDirectories(t *testing.T) {
	fs := newTestFS(t)

	require.NoError(t, fs.CreateDirectory("/save"))
	assert.ErrorIs(t, fs.CreateDirectory("/save"), OpsErr_EXISTS)

	require.NoError(t, fs.CreateFile(FileAttributeNone, 0, "/save/a"))
	require.NoError(t, fs.CreateDirectory("/save/sub"))
	require.NoError(t, fs.CreateFile(FileAttributeNone, 0, "/save/sub/b"))

	// Deleting a directory as a file is rejected, and vice versa.
	assert.ErrorIs(t, fs.DeleteFile("/save"), OpsErr_NOTAFILE)
	assert.ErrorIs(t, fs.DeleteDirectoryRecursively("/save/a"), OpsErr_NOTADIR)

	require.NoError(t, fs.DeleteDirectoryRecursively("/save"))
	_, err := fs.GetEntryType("/save")
	assert.ErrorIs(t, err, OpsErr_PATHNOTEXISTS)
}

func TestOpenFileNeverCreates(t *testing.T) {
	fs := newTestFS(t)
	_, err := fs.OpenFile(OpenModeRead|OpenModeWrite, "/missing")
	assert.ErrorIs(t, err, OpsErr_PATHNOTEXISTS)
	_, err = fs.GetEntryType("/missing")
	assert.ErrorIs(t, err, OpsErr_PATHNOTEXISTS)
}

func TestFileReadWriteAtOffsets(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.CreateFile(FileAttributeNone, 0, "/f"))

	f, err := fs.OpenFile(OpenModeRead|OpenModeWrite, "/f")
	require.NoError(t, err)

	require.NoError(t, f.Write(WriteOptionFlush, 0, []byte("0123456789")))

	buf := make([]byte, 4)
	n, err := f.Read(ReadOptionNone, 3, buf)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.Equal(t, "3456", string(buf))

	// Reading past the end is a short read, not an error.
	buf = make([]byte, 8)
	n, err = f.Read(ReadOptionNone, 6, buf)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.Equal(t, "6789", string(buf[:n]))

	// Reading entirely past the end transfers nothing.
	n, err = f.Read(ReadOptionNone, 100, buf)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	// Writing past the end extends the file.
	require.NoError(t, f.Write(WriteOptionNone, 12, []byte("ab")))
	size, err := f.GetSize()
	require.NoError(t, err)
	assert.EqualValues(t, 14, size)
}

func TestFileAccessModeEnforcement(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.CreateFile(FileAttributeNone, 4, "/f"))

	readOnly, err := fs.OpenFile(OpenModeRead, "/f")
	require.NoError(t, err)
	assert.ErrorIs(t, readOnly.Write(WriteOptionNone, 0, []byte("x")), OpsErr_NOTSUPP)

	writeOnly, err := fs.OpenFile(OpenModeWrite, "/f")
	require.NoError(t, err)
	_, err = writeOnly.Read(ReadOptionNone, 0, make([]byte, 1))
	assert.ErrorIs(t, err, OpsErr_NOTSUPP)

	// GetSize works regardless of the access mode.
	size, err := writeOnly.GetSize()
	require.NoError(t, err)
	assert.EqualValues(t, 4, size)

	_, err = readOnly.Read(ReadOptionNone, -1, make([]byte, 1))
	assert.ErrorIs(t, err, OpsErr_OUTOFRANGE)
}

func TestOpenDirectoryListing(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.CreateDirectory("/d"))
	require.NoError(t, fs.CreateFile(FileAttributeNone, 7, "/d/zz"))
	require.NoError(t, fs.CreateFile(FileAttributeNone, 0, "/d/aa"))
	require.NoError(t, fs.CreateDirectory("/d/mm"))

	dir, err := fs.OpenDirectory(DirectoryOpenAll, "/d")
	require.NoError(t, err)

	count, err := dir.GetEntryCount()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// Entries come back in name order across successive reads.
	entries := make([]DirectoryEntry, 2)
	n, err := dir.Read(entries)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	assert.Equal(t, "aa", entries[0].Name)
	assert.Equal(t, "mm", entries[1].Name)
	assert.Equal(t, EntryTypeDirectory, entries[1].Type)

	n, err = dir.Read(entries)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	assert.Equal(t, "zz", entries[0].Name)
	assert.EqualValues(t, 7, entries[0].Size)

	n, err = dir.Read(entries)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = fs.OpenDirectory(DirectoryOpenAll, "/d/aa")
	assert.ErrorIs(t, err, OpsErr_NOTADIR)
	_, err = fs.OpenDirectory(DirectoryOpenAll, "/nope")
	assert.ErrorIs(t, err, OpsErr_PATHNOTEXISTS)
}

func TestLocalProvider(t *testing.T) {
	root := t.TempDir()
	provider, err := NewLocalProvider(root)
	require.NoError(t, err)

	fs, err := provider.OpenSdCardFileSystem()
	require.NoError(t, err)
	require.NoError(t, fs.CreateDirectory("/sub"))
	require.NoError(t, fs.CreateFile(FileAttributeNone, 16, "/sub/f"))

	entryType, err := fs.GetEntryType("/sub/f")
	require.NoError(t, err)
	assert.Equal(t, EntryTypeFile, entryType)

	_, err = NewLocalProvider(root + "/does-not-exist")
	assert.Error(t, err)
}
