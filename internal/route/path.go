package route

import "strings"

// Path is a hierarchical lookup key using dot notation.
// Examples: "sky.stars.search", "camera.rotate"
type Path string

// Separator is the character used to separate path segments.
const Separator = "."

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// Segments returns the path split by the separator. An empty path yields
// nil. Empty segments between dots are preserved: "a..b" yields three
// segments, the middle one empty. Downstream registration and lookup treat
// an empty string as an ordinary segment key.
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), Separator)
}

// SegmentCount returns the number of segments in the path.
func (p Path) SegmentCount() int {
	if p == "" {
		return 0
	}
	return strings.Count(string(p), Separator) + 1
}

// Parent returns the parent path by removing the last segment.
// Returns an empty path if there is no parent.
func (p Path) Parent() Path {
	s := string(p)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return ""
	}
	return Path(s[:idx])
}

// Child returns a child path by appending a segment.
func (p Path) Child(segment string) Path {
	if p == "" {
		return Path(segment)
	}
	return Path(string(p) + Separator + segment)
}

// Base returns the last segment of the path.
func (p Path) Base() string {
	s := string(p)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// Join joins segments into a path.
func Join(segments ...string) Path {
	return Path(strings.Join(segments, Separator))
}
