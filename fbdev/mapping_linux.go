//go:build linux

package fbdev

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mapping is a frame buffer device mapped into the process.
//
// Mapping is not safe for concurrent use.
type Mapping struct {
	file   *os.File
	path   string
	data   []byte
	info   Info
	probed bool
}

// Open opens the device at path read-write with O_SYNC, probes and
// validates its geometry, and maps exactly BufferSize bytes of it.
//
// Any failure closes the device and is returned as is; there is no retry.
// Capability errors are reported before the mapping is attempted.
func Open(path string) (*Mapping, error) {
	// #nosec G304 -- device path is provided by the caller
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, &DeviceError{Op: "open", Path: path, Err: err}
	}

	info, probed := Probe(f)
	if err := info.Validate(); err != nil {
		_ = f.Close()
		return nil, err
	}

	// A regular file shorter than the mapping would fault on access.
	if st, err := f.Stat(); err == nil && st.Mode().IsRegular() && st.Size() < int64(info.BufferSize) {
		_ = f.Close()
		return nil, &SizeMismatchError{Expected: info.BufferSize, Actual: int(st.Size())}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, info.BufferSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, &DeviceError{Op: "mmap", Path: path, Err: err}
	}

	return &Mapping{
		file:   f,
		path:   path,
		data:   data,
		info:   info,
		probed: probed,
	}, nil
}

// Info implements Region.
func (m *Mapping) Info() Info { return m.info }

// Bytes implements Region.
func (m *Mapping) Bytes() []byte { return m.data }

// Probed reports whether the geometry came from the device rather than
// from Fallback.
func (m *Mapping) Probed() bool { return m.probed }

// Path returns the device path.
func (m *Mapping) Path() string { return m.path }

// Close unmaps the region and closes the device. Close is idempotent.
func (m *Mapping) Close() error {
	if m.file == nil {
		return nil
	}
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	m.file = nil
	return err
}
