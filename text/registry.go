package text

import "os"

// Registry binds loaded fonts to FontIDs.
//
// Fonts are loaded only by explicit calls and are never unloaded; loading
// into an occupied slot replaces the previous font.
//
// Registry is not safe for concurrent use.
type Registry struct {
	fonts map[FontID]*Font
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[FontID]*Font),
	}
}

// Load reads the font file at path, or at id.DefaultPath() when path is
// empty, and binds it to id. The whole file is read into memory.
//
// Read and parse failures are both *LoadError, told apart by Op. On failure
// the slot keeps its previous font.
func (r *Registry) Load(id FontID, path string) (*Font, error) {
	if path == "" {
		path = id.DefaultPath()
	}

	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Op: "read", Path: path, Err: err}
	}

	return r.LoadData(id, path, data)
}

// LoadData parses data and binds it to id. name identifies the resource in
// error messages.
func (r *Registry) LoadData(id FontID, name string, data []byte) (*Font, error) {
	f, err := ParseFont(id, name, data)
	if err != nil {
		return nil, err
	}
	r.fonts[id] = f
	return f, nil
}

// Font returns the font bound to id. It never loads implicitly: an empty
// slot is a *NotLoadedError.
func (r *Registry) Font(id FontID) (*Font, error) {
	f, ok := r.fonts[id]
	if !ok {
		return nil, &NotLoadedError{ID: id}
	}
	return f, nil
}

// Loaded reports whether id has a font.
func (r *Registry) Loaded(id FontID) bool {
	_, ok := r.fonts[id]
	return ok
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	return len(r.fonts)
}
