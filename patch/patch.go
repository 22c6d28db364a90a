// Package patch applies RFC 6902 JSON patches and RFC 7386 merge
// patches to tracked tables. Patches are bulk edits: the patched
// document replaces the old contents through the same raw structural
// channel DeepUpdate uses, so no per-key change notifications fire.
//
// The document must be JSON representable; non-string keys outside
// the contiguous indexed region are stringified on the way through.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/tracked"
	"github.com/signadot/tracked/encode"
)

// Apply applies an RFC 6902 JSON patch to dst, a *Tracked or *Table.
func Apply(dst any, patchData []byte) error {
	ops, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	return rewrite(dst, ops.Apply)
}

// ApplyMerge applies an RFC 7386 merge patch to dst.
func ApplyMerge(dst any, patchData []byte) error {
	return rewrite(dst, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patchData)
	})
}

func rewrite(dst any, f func([]byte) ([]byte, error)) error {
	snap, ok := tracked.Unwrap(dst).(*tracked.Table)
	if !ok {
		return fmt.Errorf("%w: cannot patch %T", tracked.ErrNotTable, dst)
	}
	doc, err := encode.MarshalJSON(snap)
	if err != nil {
		return err
	}
	out, err := f(doc)
	if err != nil {
		return err
	}
	next, err := encode.UnmarshalJSON(out)
	if err != nil {
		return err
	}
	for _, k := range snap.Keys() {
		if next.Get(k) == nil {
			if err := tracked.DeepUpdate(dst, tracked.Path{k}, nil); err != nil {
				return err
			}
		}
	}
	for k, v := range next.All() {
		if err := tracked.DeepUpdate(dst, tracked.Path{k}, v); err != nil {
			return err
		}
	}
	return nil
}
