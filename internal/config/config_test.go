package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bramblecore/pjstranspile/internal/config"
)

func TestLoadAndOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "defaultScope:\n  - myGlobal\naFunctions:\n  helper: \"function(){}\"\nlibraries:\n  sound:\n    exports: [playSound]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	opts := f.Options()
	names := opts.GlobalNames()
	if !names["myGlobal"] || !names["println"] || !names["playSound"] {
		t.Errorf("missing expected global names: %v", names)
	}
	if opts.AFunctions["helper"] != "function(){}" {
		t.Errorf("aFunctions not carried through: %v", opts.AFunctions)
	}
}
