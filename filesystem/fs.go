package filesystem

import (
	"fmt"

	"github.com/n3xus/n3xus"
	"github.com/n3xus/n3xus/internal/util"
)

// FileSystem is the in-memory tree plus the cursor (current directory).
// It is owned by a single session and is not safe for concurrent mutation.
type FileSystem struct {
	root *Node // Root of node tree
	cwd  *Node // Cursor; always a directory reachable from root
}

var _ n3xus.FileSystemOperator = (*FileSystem)(nil)

func NewFS() *FileSystem {
	root := newRootNode()
	return &FileSystem{root: root, cwd: root}
}

// Root returns the root node
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Cwd returns the cursor node
func (fs *FileSystem) Cwd() *Node {
	return fs.cwd
}

// CurrentPath returns the absolute canonical path of the cursor
func (fs *FileSystem) CurrentPath() string {
	return fs.cwd.Path()
}

// resolve walks path from the cursor (relative) or the root (absolute).
// "." stays, ".." climbs (the root is its own parent) and anything else is
// looked up in the current directory. Walking on from a file fails.
func (fs *FileSystem) resolve(path string) (*Node, error) {
	node := fs.cwd
	if IsAbs(path) {
		node = fs.root
	}
	for _, seg := range SplitPath(path) {
		if !node.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		switch seg {
		case currentDir:
		case parentDir:
			node = node.parent
		default:
			child, ok := node.GetChild(seg)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			node = child
		}
	}
	return node, nil
}

// resolveDir is [FileSystem.resolve] that also requires a directory
func (fs *FileSystem) resolveDir(path string) (*Node, error) {
	node, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, path)
	}
	return node, nil
}

// Resolve returns the node addressed by path. An empty path is the cursor.
func (fs *FileSystem) Resolve(path string) (n3xus.NodeInfo, error) {
	node, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// ChangeDirectory moves the cursor to the directory at path.
// An empty path moves the cursor to the root.
func (fs *FileSystem) ChangeDirectory(path string) error {
	logger := util.GetLogger("FS.ChangeDirectory")

	if path == "" {
		fs.cwd = fs.root
		return nil
	}
	node, err := fs.resolveDir(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Failed to change directory")
		return err
	}
	fs.cwd = node
	logger.Trace().Str("cwd", node.Path()).Msg("Changed directory")
	return nil
}

func (fs *FileSystem) CreateDirectory(path string) error {
	_, err := fs.createNode(path, n3xus.DirNodeKind)
	return err
}

func (fs *FileSystem) CreateFile(path string) error {
	_, err := fs.createNode(path, n3xus.FileNodeKind)
	return err
}

// createNode links a new node of kind at path. The parent must already
// exist and be a directory; the final name must be free.
func (fs *FileSystem) createNode(path string, kind n3xus.NodeKind) (*Node, error) {
	logger := util.GetLogger("FS.createNode")

	parentPath, name := SplitParent(path)
	if !validateName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, path)
	}
	parent, err := fs.resolveDir(parentPath)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Failed to resolve parent directory")
		return nil, err
	}
	node := NewNode(name, kind)
	if !parent.AddChild(node) {
		return nil, fmt.Errorf("%w: %s", ErrExists, path)
	}
	logger.Debug().Str("path", node.Path()).Stringer("kind", kind).Msg("Added new node")
	return node, nil
}

// RemoveNode detaches the node at path together with its subtree.
// The root, the cursor and any ancestor of the cursor cannot be removed.
func (fs *FileSystem) RemoveNode(path string) error {
	logger := util.GetLogger("FS.RemoveNode")

	node, err := fs.resolve(path)
	if err != nil {
		return err
	}
	if node.IsRoot() {
		return fmt.Errorf("%w: %s", ErrRemoveRoot, path)
	}
	if node.isAncestorOf(fs.cwd) {
		return fmt.Errorf("%w: %s", ErrRemoveCwd, path)
	}
	nodePath := node.Path()
	node.parent.RemoveChild(node.name)
	logger.Debug().Str("path", nodePath).Int("children", node.ChildCount()).Msg("Removed node")
	return nil
}

// CopyNode deep-copies the node at src to dst. dst names the copy itself:
// its parent must be an existing directory and its name must be free.
// The copy is built before it is linked, so copying a directory into its
// own subtree terminates.
func (fs *FileSystem) CopyNode(src, dst string) error {
	logger := util.GetLogger("FS.CopyNode")

	source, err := fs.resolve(src)
	if err != nil {
		return err
	}
	parentPath, name := SplitParent(dst)
	if !validateName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, dst)
	}
	parent, err := fs.resolveDir(parentPath)
	if err != nil {
		return err
	}
	if _, ok := parent.GetChild(name); ok {
		return fmt.Errorf("%w: %s", ErrExists, dst)
	}
	cp := source.clone(name)
	if !parent.AddChild(cp) {
		return fmt.Errorf("%w: %s", ErrExists, dst)
	}
	logger.Debug().Str("src", source.Path()).Str("dst", cp.Path()).Msg("Copied node")
	return nil
}

// ListDirectory returns the sorted child names of the directory at path.
// An empty path lists the cursor. On error the returned slice is empty.
func (fs *FileSystem) ListDirectory(path string) ([]string, error) {
	node, err := fs.resolveDir(path)
	if err != nil {
		return []string{}, err
	}
	return node.ChildNames(), nil
}

// AddDirNode creates every missing directory along path, always starting at
// the root, and returns the leaf.
// It is equivalent to calling `mkdir -p` from a shell and similarly will only create
// directories that do not already exist and will not error if the leaf already exists.
func (fs *FileSystem) AddDirNode(path string) (*Node, error) {
	logger := util.GetLogger("FS.AddDirNode")

	cur := fs.root
	newCnt := 0
	for _, name := range SplitPath(path) {
		switch name {
		case currentDir:
			continue
		case parentDir:
			cur = cur.parent
			continue
		}
		if child, ok := cur.GetChild(name); ok {
			if !child.IsDir() {
				return nil, fmt.Errorf("%w: %s", ErrNotDir, child.Path())
			}
			cur = child
			continue
		}
		node := NewNode(name, n3xus.DirNodeKind)
		cur.AddChild(node)
		newCnt++
		cur = node
	}
	if newCnt > 0 {
		logger.Debug().Str("path", path).Int("created", newCnt).Msg("Created new dir(s)")
	}
	return cur, nil
}

// AddFileNode adds a file at path (always from the root), creating any
// missing ancestor directories. If a node already exists at the path it
// returns an error.
func (fs *FileSystem) AddFileNode(path string) (*Node, error) {
	parentPath, name := SplitParent(path)
	if !validateName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, path)
	}
	parent, err := fs.AddDirNode(parentPath)
	if err != nil {
		return nil, err
	}
	node := NewNode(name, n3xus.FileNodeKind)
	if !parent.AddChild(node) {
		return nil, fmt.Errorf("%w: %s", ErrExists, path)
	}
	return node, nil
}
