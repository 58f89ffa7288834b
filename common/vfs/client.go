package vfs

import (
	"errors"
	"strings"
	"sync"

	"github.com/proxfs/proxfs-go/common/fsp"
	"go.uber.org/zap"
)

// SessionFactory establishes a session with the filesystem-proxy service.
// It is invoked by Initialize, so a Client can be constructed before the
// service is reachable.
type SessionFactory func() (fsp.Provider, error)

// device associates one root segment with a service filesystem object.
// Later mounts under an already used name are shadowed by earlier ones
// until those are unmounted; the table keeps them all.
type device struct {
	rootName PathSegment
	fs       fsp.FileSystem
}

// Client is the single authority for the proxy session and the mount table.
// All methods except Initialize and IsInitialized fail with
// ErrNotInitialized until Initialize has succeeded.
//
// The session and the mount table form one critical section: lookups during
// path resolution must never observe the table mid-mutation, so both are
// guarded by the same lock. File and Directory handles returned by the
// Client are not safe for concurrent use of a single instance.
type Client struct {
	factory SessionFactory
	log     *zap.Logger

	mu      sync.RWMutex
	session fsp.Provider
	devices []device
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger for debug-level operation tracing. Without
// it the Client is silent.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New returns an uninitialized Client. Call Initialize before anything else.
func New(factory SessionFactory, opts ...Option) *Client {
	c := &Client{
		factory: factory,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize establishes the proxy session. Calling it again replaces the
// session; the previous one is closed.
func (c *Client) Initialize() error {
	session, err := c.factory()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		if err := c.session.Close(); err != nil {
			c.log.Warn("error closing replaced session", zap.Error(err))
		}
	}
	c.session = session
	c.log.Debug("established filesystem proxy session",
		zap.String("session", session.SessionID().String()))
	return nil
}

// IsInitialized reports whether a proxy session is present.
func (c *Client) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session != nil
}

// Finalize drops all mounted devices and closes the session. Safe to call
// on an uninitialized Client.
func (c *Client) Finalize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices = nil
	if c.session != nil {
		if err := c.session.Close(); err != nil {
			c.log.Warn("error closing session", zap.Error(err))
		}
		c.session = nil
	}
}

// Mount registers fs under the given device name. Mounting the same name
// twice keeps both entries; resolution returns the earliest one.
func (c *Client) Mount(name string, fs fsp.FileSystem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ErrNotInitialized
	}
	rootName := PathSegment{Name: name + rootNameSuffix, Type: SegmentRoot}
	c.devices = append(c.devices, device{rootName: rootName, fs: fs})
	c.log.Debug("mounted device", zap.String("device", rootName.Name))
	return nil
}

// MountSdCard asks the service for its canonical SD card filesystem and
// mounts it under the given name.
func (c *Client) MountSdCard(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ErrNotInitialized
	}
	fs, err := c.session.OpenSdCardFileSystem()
	if err != nil {
		return err
	}
	rootName := PathSegment{Name: name + rootNameSuffix, Type: SegmentRoot}
	c.devices = append(c.devices, device{rootName: rootName, fs: fs})
	c.log.Debug("mounted SD card filesystem", zap.String("device", rootName.Name))
	return nil
}

// Unmount removes every device mounted under name. The trailing device
// delimiter may be included or omitted.
func (c *Client) Unmount(name string) {
	name = strings.TrimSuffix(name, rootNameSuffix)
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.devices[:0]
	for _, dev := range c.devices {
		if strings.TrimSuffix(dev.rootName.Name, rootNameSuffix) != name {
			kept = append(kept, dev)
		}
	}
	c.devices = kept
	c.log.Debug("unmounted device", zap.String("device", name))
}

// findDeviceLocked resolves a root segment to its filesystem object by
// linear scan in mount order; the first match wins. Callers must hold mu.
func (c *Client) findDeviceLocked(segment PathSegment) (fsp.FileSystem, error) {
	for _, dev := range c.devices {
		if dev.rootName.Name == segment.Name {
			return dev.fs, nil
		}
	}
	return nil, ErrDeviceNotFound
}

// resolve gates on initialization, unpacks the path, picks the device named
// by the first segment and returns it with the repacked service-local path.
func (c *Client) resolve(path string) (fsp.FileSystem, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil, "", ErrNotInitialized
	}
	unpacked, err := UnpackPath(path)
	if err != nil {
		return nil, "", err
	}
	fs, err := c.findDeviceLocked(unpacked[0])
	if err != nil {
		return nil, "", err
	}
	return fs, PackPath(unpacked, false), nil
}

// CreateFile creates a file of the given size at a device-prefixed path.
func (c *Client) CreateFile(path string, size int64, attr fsp.FileAttribute) error {
	fs, local, err := c.resolve(path)
	if err != nil {
		return err
	}
	return fs.CreateFile(attr, size, local)
}

// DeleteFile removes the file at a device-prefixed path.
func (c *Client) DeleteFile(path string) error {
	fs, local, err := c.resolve(path)
	if err != nil {
		return err
	}
	return fs.DeleteFile(local)
}

// CreateDirectory creates a single directory at a device-prefixed path.
func (c *Client) CreateDirectory(path string) error {
	fs, local, err := c.resolve(path)
	if err != nil {
		return err
	}
	return fs.CreateDirectory(local)
}

// DeleteDirectory removes the directory at a device-prefixed path along
// with everything below it.
func (c *Client) DeleteDirectory(path string) error {
	fs, local, err := c.resolve(path)
	if err != nil {
		return err
	}
	return fs.DeleteDirectoryRecursively(local)
}

// GetEntryType reports whether a device-prefixed path names a file or a
// directory.
func (c *Client) GetEntryType(path string) (fsp.EntryType, error) {
	fs, local, err := c.resolve(path)
	if err != nil {
		return 0, err
	}
	return fs.GetEntryType(local)
}

// OpenFile opens the file at a device-prefixed path and wraps it in a
// cursor-carrying handle. If the service reports the path does not exist
// and OpenCreate was requested, the file is created empty and the open is
// retried once; a failure of the retry is surfaced as-is. With OpenAppend
// the initial cursor is the file size, falling back to 0 if the size query
// fails.
func (c *Client) OpenFile(path string, opt OpenOption) (*File, error) {
	fs, local, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	mode := opt.openMode()
	file, err := fs.OpenFile(mode, local)
	if err != nil {
		if !errors.Is(err, fsp.OpsErr_PATHNOTEXISTS) || !opt.Has(OpenCreate) {
			return nil, err
		}
		c.log.Debug("creating missing file on open", zap.String("path", path))
		if err := fs.CreateFile(fsp.FileAttributeNone, 0, local); err != nil {
			return nil, err
		}
		file, err = fs.OpenFile(mode, local)
		if err != nil {
			return nil, err
		}
	}
	var offset int64
	if opt.Has(OpenAppend) {
		if size, err := file.GetSize(); err == nil {
			offset = size
		}
	}
	return &File{file: file, offset: offset}, nil
}

// OpenDirectory opens the directory at a device-prefixed path and wraps it
// in a paged iteration handle. The entry count is snapshotted here and not
// re-queried later.
func (c *Client) OpenDirectory(path string, mode fsp.DirectoryOpenMode) (*Directory, error) {
	fs, local, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	dir, err := fs.OpenDirectory(mode, local)
	if err != nil {
		return nil, err
	}
	return newDirectory(dir)
}

// FormatPath resolves a device-prefixed path without performing any
// operation, returning the service filesystem object and the service-local
// path. Useful for batching further calls against the same device.
func (c *Client) FormatPath(path string) (fsp.FileSystem, string, error) {
	return c.resolve(path)
}
