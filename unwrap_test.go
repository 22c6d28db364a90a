package tracked

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnwrapScalars(t *testing.T) {
	for _, v := range []any{nil, 1, "s", true, 2.5} {
		if got := Unwrap(v); got != v {
			t.Errorf("Unwrap(%v) = %v", v, got)
		}
	}
}

func TestUnwrapStripsViews(t *testing.T) {
	tbl := FromMap(map[string]any{"a": map[string]any{"b": 1}})
	tr, _ := Track(tbl, (&recorder{}).fn())

	got, ok := Unwrap(tr).(*Table)
	if !ok {
		t.Fatalf("unwrapped to %T, want *Table", Unwrap(tr))
	}
	if got == tbl {
		t.Error("unwrap aliases the tracked storage")
	}
	if got.Get("a") == tbl.Get("a") {
		t.Error("nested container aliases the tracked storage")
	}
	if _, ok := got.Get("a").(*Table); !ok {
		t.Errorf("nested value is %T, want *Table", got.Get("a"))
	}
	if diff := cmp.Diff(tbl.ToAny(), got.ToAny()); diff != "" {
		t.Errorf("structure (-want +got):\n%s", diff)
	}
}

func TestUnwrapClonesPlainTables(t *testing.T) {
	tbl := FromMap(map[string]any{"a": map[string]any{"b": 1}})
	got := Unwrap(tbl).(*Table)
	if got == tbl || got.Get("a") == tbl.Get("a") {
		t.Error("unwrap of a plain table must share no container identity")
	}
	if diff := cmp.Diff(tbl.ToAny(), got.ToAny()); diff != "" {
		t.Errorf("structure (-want +got):\n%s", diff)
	}
}

func TestUnwrapIdempotent(t *testing.T) {
	tbl := FromMap(map[string]any{"a": map[string]any{"b": 1}, "n": 3})
	once := Unwrap(tbl).(*Table)
	twice := Unwrap(once).(*Table)
	if diff := cmp.Diff(once.ToAny(), twice.ToAny()); diff != "" {
		t.Errorf("unwrap not structurally idempotent (-want +got):\n%s", diff)
	}
}
