package hostlib_test

import (
	"path/filepath"
	"testing"

	"github.com/bramblecore/pjstranspile/internal/hostlib"
)

func TestLoadRegistryMissingFileStartsEmpty(t *testing.T) {
	reg, err := hostlib.LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if len(reg.Libraries()) != 0 {
		t.Errorf("expected no libraries, got %v", reg.Libraries())
	}
}

func TestAddExportThenReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.json")
	reg, err := hostlib.LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if err := reg.AddExport("sound", "playSound"); err != nil {
		t.Fatalf("AddExport() error = %v", err)
	}
	if err := reg.AddExport("sound", "playSound"); err != nil {
		t.Fatalf("AddExport() dup error = %v", err)
	}

	reloaded, err := hostlib.LoadRegistry(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	names := reloaded.GlobalNames()
	if !names["playSound"] {
		t.Errorf("expected playSound in global names, got %v", names)
	}
	libs := reloaded.Libraries()
	if len(libs) != 1 || len(libs[0].Exports) != 1 {
		t.Errorf("expected exactly one export after dedup, got %+v", libs)
	}
}
