package tracked

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a value relative to the tracked root as an ordered key
// sequence. Paths are copied on extension and never mutated after
// construction, so no two call sites ever share one.
type Path []any

// Extend returns a new Path with key appended. The prefix is copied,
// never aliased.
func (p Path) Extend(key any) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = key
	return np
}

// Equal reports whether p and q hold the same key sequence.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders the path rooted at "$": string keys as ".field",
// quoted when they contain separators, integer keys as "[i]" and
// anything else as "[<key>]".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, k := range p {
		switch key := k.(type) {
		case string:
			if key != "" && strings.IndexAny(key, "'.*$[]{} ") == -1 {
				sb.WriteByte('.')
				sb.WriteString(key)
				continue
			}
			sb.WriteString(".'")
			sb.WriteString(strings.ReplaceAll(key, "'", "\\'"))
			sb.WriteByte('\'')
		case int:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(key))
			sb.WriteByte(']')
		default:
			fmt.Fprintf(&sb, "[%v]", key)
		}
	}
	return sb.String()
}

// ParsePath parses a textual path like "$.users[2].name" into a Path.
// The leading "$" is optional; fields with separator characters use
// single quotes.
func ParsePath(s string) (Path, error) {
	s = strings.TrimPrefix(s, "$")
	p := Path{}
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			if i >= len(s) {
				return nil, fmt.Errorf("%w: trailing '.' in %q", ErrBadPath, s)
			}
			field, n, err := parseField(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: %v in %q", ErrBadPath, err, s)
			}
			p = append(p, field)
			i += n
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated '[' in %q", ErrBadPath, s)
			}
			idx, err := strconv.Atoi(s[i+1 : i+end])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrBadPath, s[i+1:i+end], s)
			}
			p = append(p, idx)
			i += end + 1
		default:
			// bare first segment without a leading dot
			if len(p) != 0 {
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadPath, s[i], s)
			}
			field, n, err := parseField(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: %v in %q", ErrBadPath, err, s)
			}
			p = append(p, field)
			i += n
		}
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path %q", ErrBadPath, s)
	}
	return p, nil
}

func parseField(s string) (string, int, error) {
	if s[0] == '\'' {
		end := strings.IndexByte(s[1:], '\'')
		if end < 0 {
			return "", 0, fmt.Errorf("unterminated quote")
		}
		return s[1 : 1+end], end + 2, nil
	}
	end := strings.IndexAny(s, ".[")
	if end < 0 {
		return s, len(s), nil
	}
	if end == 0 {
		return "", 0, fmt.Errorf("empty field")
	}
	return s[:end], end, nil
}
