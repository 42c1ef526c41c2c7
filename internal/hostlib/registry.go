package hostlib

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Registry is the on-disk form of hostLib.lib (spec §6): a JSON object
// mapping library name to its exports array, read with gjson and
// patched in place with sjson so the `config` CLI command can add a
// single export without re-serializing the whole document.
type Registry struct {
	path string
	raw  string
}

// LoadRegistry reads path, or starts from an empty `{}` document if it
// doesn't exist yet (a fresh registry is a valid registry).
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Registry{path: path, raw: "{}"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("hostlib: reading registry %s: %w", path, err)
	}
	if !gjson.Valid(string(data)) {
		return nil, fmt.Errorf("hostlib: %s does not contain valid JSON", path)
	}
	return &Registry{path: path, raw: string(data)}, nil
}

// Libraries returns every registered library and its current exports.
func (r *Registry) Libraries() []Library {
	var out []Library
	gjson.Parse(r.raw).ForEach(func(key, value gjson.Result) bool {
		lib := Library{Name: key.String()}
		for _, e := range value.Get("exports").Array() {
			lib.Exports = append(lib.Exports, e.String())
		}
		out = append(out, lib)
		return true
	})
	return out
}

// GlobalNames returns Globals merged with every export currently
// registered across all libraries, ready to merge into
// session.Options.DefaultScope (spec §6: "A further global registry
// hostLib.lib maps plug-in names to objects that may have an exports
// array of names to add to the global set").
func (r *Registry) GlobalNames() map[string]bool {
	names := make(map[string]bool, len(Globals))
	for n := range Globals {
		names[n] = true
	}
	for _, lib := range r.Libraries() {
		for _, e := range lib.Exports {
			names[e] = true
		}
	}
	return names
}

// AddExport appends name to library's exports array (creating the
// library entry if it doesn't exist yet) and persists the registry.
func (r *Registry) AddExport(library, name string) error {
	path := fmt.Sprintf("%s.exports", gjsonEscape(library))
	existing := gjson.Get(r.raw, path)
	if existing.Exists() {
		for _, e := range existing.Array() {
			if e.String() == name {
				return nil
			}
		}
	}
	next, err := sjson.Set(r.raw, path+".-1", name)
	if err != nil {
		return fmt.Errorf("hostlib: adding export %s to %s: %w", name, library, err)
	}
	r.raw = next
	return r.save()
}

func (r *Registry) save() error {
	return os.WriteFile(r.path, []byte(r.raw), 0o644)
}

// gjsonEscape escapes characters that are path-syntax-significant to
// gjson/sjson (., *, ?) in a library name used as a path segment.
func gjsonEscape(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '.', '*', '?':
			out = append(out, '\\')
		}
		out = append(out, name[i])
	}
	return string(out)
}
