package filesystem

import "strings"

const (
	// Separator delimits path segments
	Separator = "/"
	// RootName is the name (and path) of the tree root
	RootName = "/"

	currentDir = "."
	parentDir  = ".."
)

// IsAbs reports whether path starts at the root
func IsAbs(path string) bool {
	return strings.HasPrefix(path, Separator)
}

// SplitPath returns the non-empty segments of path. Runs of separators and
// leading or trailing separators produce no segments.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

// SplitParent splits path at its last separator into the parent path and the
// final name. Trailing separators are ignored. For an absolute path whose
// parent part would be empty the parent is the root; for a relative path with
// no separator the parent is "" (the cursor).
//
//	SplitParent("a/b")  // "a", "b"
//	SplitParent("/a")   // "/", "a"
//	SplitParent("a")    // "", "a"
//	SplitParent("a/b/") // "a", "b"
//	SplitParent("/")    // "/", ""
func SplitParent(path string) (parent, name string) {
	trimmed := strings.TrimRight(path, Separator)
	idx := strings.LastIndex(trimmed, Separator)
	if idx < 0 {
		if IsAbs(path) {
			return RootName, trimmed
		}
		return "", trimmed
	}
	parent, name = trimmed[:idx], trimmed[idx+1:]
	if parent == "" {
		parent = RootName
	}
	return parent, name
}

// validateName rejects names that could not be addressed by a path
func validateName(name string) bool {
	return name != "" && name != currentDir && name != parentDir && !strings.Contains(name, Separator)
}
