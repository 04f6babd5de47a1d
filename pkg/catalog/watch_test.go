package catalog

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/msto63/munits/pkg/quantity"
)

func waitFor(t *testing.T, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestWatch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := writeCatalog(t, dir, "units.toml", tomlCatalog)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p := newProvider()
	if err := c.Apply(p); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done, err := Watch(ctx, path, p, nil)
	if err != nil {
		cancel()
		t.Fatalf("Watch failed: %v", err)
	}

	writeCatalog(t, dir, "units.toml", tomlCatalog+`
[[unit]]
kind = "length"
name = "yd"
factor = 0.9144
`)
	if !waitFor(t, func() bool { _, ok := p.GetUnit("yd"); return ok }) {
		t.Errorf("Expected yd to be registered after reload")
	}

	// A broken file keeps what is registered
	writeCatalog(t, dir, "units.toml", "[[unit]]\nkind = \"length\"\nname = \"bad\"\nfactor = -1.0\n")
	time.Sleep(500 * time.Millisecond)
	if _, ok := p.GetUnit("bad"); ok {
		t.Errorf("Invalid catalog must not be applied")
	}
	if len(p.GetUnits(quantity.KindLength)) != 3 {
		t.Errorf("Expected previous units to stay registered")
	}

	// Other files in the directory are ignored
	writeCatalog(t, dir, "other.toml", `
[[unit]]
kind = "length"
name = "nmi"
factor = 1852.0
`)
	time.Sleep(500 * time.Millisecond)
	if _, ok := p.GetUnit("nmi"); ok {
		t.Errorf("Unrelated file must not be applied")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Watcher did not stop after cancel")
	}
}

func TestWatchRequiresPath(t *testing.T) {
	if _, err := Watch(context.Background(), "", newProvider(), nil); err == nil {
		t.Errorf("Expected error for empty path")
	}
}
