package vfs

import "github.com/proxfs/proxfs-go/common/fsp"

// Entries are fetched from the service in fixed batches of this many.
const directoryBatchSize = 16

// Directory adds paged iteration on top of a service directory object. The
// total entry count is snapshotted when the handle is created; entries
// added or removed on the service afterwards are not reflected. A Directory
// is owned by a single caller; concurrent use of one instance is not safe.
type Directory struct {
	dir     fsp.Directory
	offset  int64
	total   int64
	entries []fsp.DirectoryEntry
}

func newDirectory(dir fsp.Directory) (*Directory, error) {
	total, err := dir.GetEntryCount()
	if err != nil {
		return nil, err
	}
	return &Directory{dir: dir, total: total}, nil
}

// refresh fetches the next batch from the service if the cursor has caught
// up with the buffered entries.
func (d *Directory) refresh() error {
	if d.offset >= int64(len(d.entries)) {
		batch := make([]fsp.DirectoryEntry, directoryBatchSize)
		n, err := d.dir.Read(batch)
		if err != nil {
			return err
		}
		d.entries = append(d.entries, batch[:n]...)
	}
	return nil
}

// Next returns the next entry, or nil once the snapshotted total has been
// reached.
func (d *Directory) Next() (*fsp.DirectoryEntry, error) {
	if d.offset == d.total {
		return nil, nil
	}
	if err := d.refresh(); err != nil {
		return nil, err
	}
	// The service returned fewer entries than the snapshot promised.
	if d.offset >= int64(len(d.entries)) {
		return nil, nil
	}
	entry := d.entries[d.offset]
	d.offset++
	return &entry, nil
}

// Rewind resets the cursor to the first entry. Previously fetched entries
// stay buffered and are served again without another service round-trip.
func (d *Directory) Rewind() error {
	d.offset = 0
	return d.refresh()
}

// Rel reports the cursor position and the snapshotted entry count.
func (d *Directory) Rel() (int64, int64) {
	return d.offset, d.total
}
