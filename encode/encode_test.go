package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tracked"
)

func TestYAMLRoundTrip(t *testing.T) {
	src := `name: demo
count: 3
items:
  - 10
  - 20
nested:
  deep:
    flag: true
`
	tbl, err := UnmarshalYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":  "demo",
		"count": 3,
		"items": []any{10, 20},
		"nested": map[string]any{
			"deep": map[string]any{"flag": true},
		},
	}
	if diff := cmp.Diff(want, tbl.ToAny()); diff != "" {
		t.Fatalf("decoded (-want +got):\n%s", diff)
	}

	out, err := MarshalYAML(tbl)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tbl.ToAny(), back.ToAny()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestYAMLSequence(t *testing.T) {
	out, err := MarshalYAML(tracked.FromSlice([]any{10, 20, 30}))
	if err != nil {
		t.Fatal(err)
	}
	want := "- 10\n- 20\n- 30\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestYAMLSparseIsMapping(t *testing.T) {
	tbl := tracked.FromSlice([]any{"a", "b"})
	tbl.Set(5, "e")
	back, err := UnmarshalYAML(mustMarshalYAML(t, tbl))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"1": "a", "2": "b", "5": "e"}
	if diff := cmp.Diff(want, back.ToAny()); diff != "" {
		t.Errorf("sparse table (-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	src := []byte(`{"a":[1,2],"b":{"c":"x"},"n":4}`)
	tbl, err := UnmarshalJSON(src)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{1, 2},
		"b": map[string]any{"c": "x"},
		"n": 4,
	}
	if diff := cmp.Diff(want, tbl.ToAny()); diff != "" {
		t.Fatalf("decoded (-want +got):\n%s", diff)
	}

	out, err := MarshalJSON(tbl)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tbl.ToAny(), back.ToAny()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestUnmarshalScalarRoot(t *testing.T) {
	if _, err := UnmarshalYAML([]byte("42")); err == nil {
		t.Error("scalar root did not error")
	}
}

func mustMarshalYAML(t *testing.T, tbl *tracked.Table) []byte {
	t.Helper()
	out, err := MarshalYAML(tbl)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
