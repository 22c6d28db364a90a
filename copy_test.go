package tracked

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeepCopyIndependence(t *testing.T) {
	src := FromMap(map[string]any{"a": map[string]any{"b": 1}})
	dst := DeepCopy(src)

	if dst == src || dst.Get("a") == src.Get("a") {
		t.Fatal("deep copy shares container identity with the source")
	}
	dst.Get("a").(*Table).Set("b", 2)
	if got := src.Get("a").(*Table).Get("b"); got != 1 {
		t.Errorf("mutating the copy changed the source: %v", got)
	}
}

func TestFreezeRecursive(t *testing.T) {
	tbl := Freeze(DeepCopy(FromMap(map[string]any{"a": map[string]any{"b": 1}})))

	assertPanics := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	assertPanics("root write", func() { tbl.Set("x", 1) })
	assertPanics("nested write", func() { tbl.Get("a").(*Table).Set("b", 2) })
	assertPanics("root delete", func() { tbl.Set("a", nil) })
	if !tbl.Frozen() {
		t.Error("root not marked frozen")
	}
}

func TestRawSnapshotIsolation(t *testing.T) {
	rec := &recorder{}
	tbl := FromMap(map[string]any{"a": map[string]any{"b": 1}})
	tr, _ := Track(tbl, rec.fn())

	snap := tr.Raw()
	if !snap.Frozen() {
		t.Fatal("snapshot not frozen")
	}

	// the tracked root stays writable and the snapshot keeps its state
	tr.Get("a").(*Tracked).Set("b", 2)
	if got := snap.Get("a").(*Table).Get("b"); got != 1 {
		t.Errorf("snapshot observed a later write: %v", got)
	}
	if diff := cmp.Diff(map[string]any{"a": map[string]any{"b": 1}}, snap.ToAny()); diff != "" {
		t.Errorf("snapshot content (-want +got):\n%s", diff)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("snapshot mutation did not panic")
			}
		}()
		snap.Set("x", 1)
	}()
	if got := tbl.Get("a").(*Table).Get("b"); got != 2 {
		t.Errorf("tracked root affected by snapshot mutation attempt: %v", got)
	}
}
