package cmd

import (
	"github.com/bramblecore/pjstranspile/internal/config"
	"github.com/bramblecore/pjstranspile/internal/hostlib"
	"github.com/bramblecore/pjstranspile/pkg/transpile"
)

// loadOptions builds transpile.Options from --config, falling back to
// the bare hostlib.Globals/PConstants default scope when no config file
// is set.
func loadOptions(file string) (transpile.Options, error) {
	if configPath == "" {
		scope := make(map[string]bool, len(hostlib.Globals)+len(hostlib.PConstants))
		for n := range hostlib.Globals {
			scope[n] = true
		}
		for n := range hostlib.PConstants {
			scope[n] = true
		}
		return transpile.Options{DefaultScope: scope, File: file}, nil
	}

	f, err := config.Load(configPath)
	if err != nil {
		return transpile.Options{}, err
	}
	opts := f.Options()

	if f.Registry != "" {
		reg, err := hostlib.LoadRegistry(f.Registry)
		if err != nil {
			return transpile.Options{}, err
		}
		opts = config.MergeRegistry(opts, reg)
	}

	return transpile.Options{
		DefaultScope: opts.DefaultScope,
		AFunctions:   opts.AFunctions,
		Libraries:    opts.Libraries,
		File:         file,
	}, nil
}
