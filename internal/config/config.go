// Package config loads the transpiler's external configuration (spec
// §6): the defaultScope name set, the aFunctions map, and the list of
// host libraries to merge into a session.Options.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/bramblecore/pjstranspile/internal/hostlib"
	"github.com/bramblecore/pjstranspile/internal/session"
)

// File is the on-disk shape of a config YAML document, e.g.:
//
//	defaultScope:
//	  - println
//	  - loadImage
//	aFunctions:
//	  myHelper: "function() { ... }"
//	libraries:
//	  sound:
//	    exports: [playSound, stopSound]
type File struct {
	DefaultScope []string                `yaml:"defaultScope"`
	AFunctions   map[string]string       `yaml:"aFunctions"`
	Libraries    map[string]LibraryEntry `yaml:"libraries"`
	Registry     string                  `yaml:"registry"`
}

// LibraryEntry is one `libraries.<name>` entry.
type LibraryEntry struct {
	Exports []string `yaml:"exports"`
}

// Load reads and parses a config file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return f, nil
}

// Options builds a session.Options from the parsed file, seeding the
// default scope with hostlib.Globals and hostlib.PConstants (spec §6:
// "a read-only name set including a nested PConstants name set")
// before layering the file's own entries and libraries on top.
func (f File) Options() session.Options {
	scope := make(map[string]bool, len(hostlib.Globals)+len(hostlib.PConstants)+len(f.DefaultScope))
	for n := range hostlib.Globals {
		scope[n] = true
	}
	for n := range hostlib.PConstants {
		scope[n] = true
	}
	for _, n := range f.DefaultScope {
		scope[n] = true
	}

	libs := make(map[string]session.Library, len(f.Libraries))
	for name, entry := range f.Libraries {
		libs[name] = session.Library{Exports: entry.Exports}
	}

	return session.Options{
		DefaultScope: scope,
		AFunctions:   f.AFunctions,
		Libraries:    libs,
	}
}

// MergeRegistry folds a persisted hostlib.Registry's exports into opts,
// as if every registered library had been declared in the config file
// (used when a `registry:` path is set alongside inline `libraries:`
// entries).
func MergeRegistry(opts session.Options, reg *hostlib.Registry) session.Options {
	merged := opts
	if merged.DefaultScope == nil {
		merged.DefaultScope = make(map[string]bool)
	}
	for name := range reg.GlobalNames() {
		merged.DefaultScope[name] = true
	}
	return merged
}
