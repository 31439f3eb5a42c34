package fbdev

// Region is an exclusively owned, fixed-length frame buffer byte region.
//
// Bytes returns the live region; its length never changes between Open and
// Close. A Region must have exactly one owner, and the slice returned by
// Bytes must not outlive Close.
type Region interface {
	// Info returns the validated geometry of the region.
	Info() Info

	// Bytes returns the mapped bytes.
	Bytes() []byte

	// Close releases the region. Close is idempotent.
	Close() error
}

// Memory is a heap-backed Region with frame buffer geometry.
type Memory struct {
	info Info
	data []byte
}

// NewMemory allocates exactly info.BufferSize bytes after validating info.
func NewMemory(info Info) (*Memory, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if info.BufferSize < 0 {
		return nil, &SizeMismatchError{Expected: info.LineLength * info.Height, Actual: info.BufferSize}
	}
	return &Memory{
		info: info,
		data: make([]byte, info.BufferSize),
	}, nil
}

// Info implements Region.
func (m *Memory) Info() Info { return m.info }

// Bytes implements Region.
func (m *Memory) Bytes() []byte { return m.data }

// Close implements Region.
func (m *Memory) Close() error {
	m.data = nil
	return nil
}
