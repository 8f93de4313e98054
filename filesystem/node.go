package filesystem

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/n3xus/n3xus"
	"github.com/puzpuzpuz/xsync/v4"
)

type Node struct {
	id       uuid.UUID
	name     string                    // Name of the node (last part of the path)
	kind     n3xus.NodeKind            // Immutable after creation
	parent   *Node                     // Non-owning back-reference; the root points at itself, nil once detached
	children *xsync.Map[string, *Node] // child nodes by name; nil for files
}

var _ n3xus.NodeInfo = (*Node)(nil)

// NewNode creates a detached Node with a fresh ID.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// Parent ref when linking as its child
func NewNode(name string, kind n3xus.NodeKind) *Node {
	node := &Node{
		id:   uuid.New(),
		name: name,
		kind: kind,
	}
	if kind == n3xus.DirNodeKind {
		node.children = xsync.NewMap[string, *Node]()
	}
	return node
}

// newRootNode creates the tree root: a directory named "/" that is its own parent
func newRootNode() *Node {
	root := NewNode(RootName, n3xus.DirNodeKind)
	root.parent = root
	return root
}

func (n *Node) ID() uuid.UUID        { return n.id }
func (n *Node) Name() string         { return n.name }
func (n *Node) Kind() n3xus.NodeKind { return n.kind }
func (n *Node) IsDir() bool          { return n.kind == n3xus.DirNodeKind }

// IsRoot reports whether the node is its own parent
func (n *Node) IsRoot() bool {
	return n.parent == n
}

// Parent returns the parent node; nil for detached nodes
func (n *Node) Parent() *Node {
	return n.parent
}

// Path returns the absolute path of the node. The root yields "/".
// A detached node yields the path up to its detached ancestor.
func (n *Node) Path() string {
	if n.IsRoot() {
		return RootName
	}
	var names []string
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.parent {
		names = append(names, cur.name)
	}
	slices.Reverse(names)
	return Separator + strings.Join(names, Separator)
}

// AddChild adds a child node to the node's children map
// and sets the child's parent to this node.
// Returns false without linking if the name is taken or n is not a directory.
func (n *Node) AddChild(child *Node) bool {
	if n.children == nil {
		return false
	}
	if _, loaded := n.children.LoadOrStore(child.name, child); loaded {
		return false
	}
	child.parent = n
	return true
}

// GetChild returns a child node by name
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Load(name)
}

// Child implements [n3xus.NodeInfo]
func (n *Node) Child(name string) (n3xus.NodeInfo, bool) {
	child, ok := n.GetChild(name)
	if !ok {
		return nil, false
	}
	return child, true
}

// RemoveChild detaches the named child and its subtree
func (n *Node) RemoveChild(name string) bool {
	if n.children == nil {
		return false
	}
	if child, exists := n.children.LoadAndDelete(name); exists {
		child.parent = nil
		return true
	}
	return false
}

func (n *Node) ChildCount() int {
	if n.children == nil {
		return 0
	}
	return n.children.Size()
}

// ChildNames returns the names of the direct children sorted lexicographically
func (n *Node) ChildNames() []string {
	names := make([]string, 0, n.ChildCount())
	if n.children == nil {
		return names
	}
	n.children.Range(func(name string, _ *Node) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// isAncestorOf reports whether n is other or lies on other's path to the root
func (n *Node) isAncestorOf(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
		if cur.IsRoot() {
			break
		}
	}
	return false
}

// clone returns a detached deep copy of the subtree rooted at n, named name.
// Every node of the copy is new; nothing is shared with the source.
func (n *Node) clone(name string) *Node {
	cp := NewNode(name, n.kind)
	if n.children != nil {
		n.children.Range(func(childName string, child *Node) bool {
			cp.AddChild(child.clone(childName))
			return true
		})
	}
	return cp
}
