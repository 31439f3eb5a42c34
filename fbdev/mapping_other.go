//go:build !linux

package fbdev

// Mapping is a frame buffer device mapped into the process.
// It cannot be created outside Linux.
type Mapping struct {
	info Info
}

// Open always fails with ErrUnsupported outside Linux.
func Open(path string) (*Mapping, error) {
	return nil, &DeviceError{Op: "open", Path: path, Err: ErrUnsupported}
}

// Info implements Region.
func (m *Mapping) Info() Info { return m.info }

// Bytes implements Region.
func (m *Mapping) Bytes() []byte { return nil }

// Probed reports whether the geometry came from the device.
func (m *Mapping) Probed() bool { return false }

// Path returns the device path.
func (m *Mapping) Path() string { return "" }

// Close implements Region.
func (m *Mapping) Close() error { return nil }
