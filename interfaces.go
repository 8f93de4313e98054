package n3xus

// FileSystemOperator defines the virtual filesystem operations command
// handlers are allowed to use. Every mutator returns nil on success and a
// wrapped sentinel error describing the violated rule otherwise.
type FileSystemOperator interface {
	// CurrentPath returns the absolute path of the current directory
	CurrentPath() string

	// ChangeDirectory moves the cursor; an empty path moves it to the root
	ChangeDirectory(path string) error

	CreateDirectory(path string) error
	CreateFile(path string) error

	// RemoveNode detaches a node and its whole subtree
	RemoveNode(path string) error

	// CopyNode deep-copies src to dst; dst names the copy, not its parent
	CopyNode(src, dst string) error

	// ListDirectory returns sorted child names; an empty path lists the cursor
	ListDirectory(path string) ([]string, error)

	// Resolve looks up the node addressed by path
	Resolve(path string) (NodeInfo, error)
}
