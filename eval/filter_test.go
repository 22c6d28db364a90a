package eval

import (
	"testing"

	"github.com/signadot/tracked"
)

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		change tracked.Change
		want   bool
	}{
		{
			name:   "path prefix hit",
			src:    `path startsWith "$.users"`,
			change: tracked.Change{Path: tracked.Path{"users", 1, "name"}, Old: "a", New: "b"},
			want:   true,
		},
		{
			name:   "path prefix miss",
			src:    `path startsWith "$.users"`,
			change: tracked.Change{Path: tracked.Path{"admin"}, Old: 1, New: 2},
			want:   false,
		},
		{
			name:   "key match",
			src:    `key == "name"`,
			change: tracked.Change{Path: tracked.Path{"users", 1, "name"}, New: "b"},
			want:   true,
		},
		{
			name:   "deletion only",
			src:    `new == nil`,
			change: tracked.Change{Path: tracked.Path{"a"}, Old: 1, New: nil},
			want:   true,
		},
		{
			name:   "old value guard",
			src:    `old != nil && new != nil`,
			change: tracked.Change{Path: tracked.Path{"a"}, Old: nil, New: 5},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.Match(tt.change)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`&&`); err == nil {
		t.Error("bad source did not error")
	}
}

func TestWrapFilters(t *testing.T) {
	f, err := Compile(`path == "$.keep"`)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	fn := f.Wrap(func(c tracked.Change) {
		got = append(got, c.Path.String())
	})

	tbl := tracked.New()
	tr, err := tracked.Track(tbl, fn)
	if err != nil {
		t.Fatal(err)
	}
	tr.Set("drop", 1)
	tr.Set("keep", 2)
	tr.Set("drop", 3)

	if len(got) != 1 || got[0] != "$.keep" {
		t.Errorf("forwarded %v, want [$.keep]", got)
	}
	if tbl.Get("drop") != 3 {
		t.Error("filtered writes must still be applied")
	}
}
