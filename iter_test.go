package tracked

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAllYieldsEveryKey(t *testing.T) {
	rec := &recorder{}
	tbl := FromMap(map[string]any{
		"a": 1,
		"b": map[string]any{"x": 2},
		"c": "s",
	})
	tr, _ := Track(tbl, rec.fn())

	var keys []string
	for k, v := range tr.All() {
		keys = append(keys, k.(string))
		if k == "b" {
			if _, ok := v.(*Tracked); !ok {
				t.Errorf("container value yielded as %T, want *Tracked", v)
			}
		}
	}
	sort.Strings(keys)
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if len(rec.changes) != 0 {
		t.Errorf("iteration fired %d notifications", len(rec.changes))
	}
}

func TestAllYieldsLiveViews(t *testing.T) {
	rec := &recorder{}
	tbl := FromMap(map[string]any{"b": map[string]any{"x": 2}})
	tr, _ := Track(tbl, rec.fn())

	for k, v := range tr.All() {
		if k != "b" {
			continue
		}
		v.(*Tracked).Set("x", 3)
	}
	if len(rec.changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(rec.changes))
	}
	if !rec.changes[0].Path.Equal(Path{"b", "x"}) {
		t.Errorf("write through yielded view has path %v, want [b x]", rec.changes[0].Path)
	}
}

func TestIndexedStopsAtGap(t *testing.T) {
	tbl := FromSlice([]any{"a", "b", "c"})
	tbl.Set(5, "e") // gap at 4
	tbl.Set("k", "assoc")
	tr, _ := Track(tbl, (&recorder{}).fn())

	var got []any
	for i, v := range tr.Indexed() {
		got = append(got, i, v)
	}
	want := []any{1, "a", 2, "b", 3, "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequential iteration (-want +got):\n%s", diff)
	}
}

func TestIndexedYieldsViews(t *testing.T) {
	rec := &recorder{}
	tbl := FromSlice([]any{map[string]any{"x": 1}})
	tr, _ := Track(tbl, rec.fn())

	for i, v := range tr.Indexed() {
		view, ok := v.(*Tracked)
		if !ok {
			t.Fatalf("element %d is %T, want *Tracked", i, v)
		}
		view.Set("x", 9)
	}
	if len(rec.changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(rec.changes))
	}
	if !rec.changes[0].Path.Equal(Path{1, "x"}) {
		t.Errorf("path %v, want [1 x]", rec.changes[0].Path)
	}
}
