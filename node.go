package n3xus

import "github.com/google/uuid"

// NodeKind distinguishes directories from (empty) files
type NodeKind uint8

const (
	DirNodeKind NodeKind = iota
	FileNodeKind
)

func (k NodeKind) String() string {
	switch k {
	case DirNodeKind:
		return "directory"
	case FileNodeKind:
		return "file"
	default:
		return "unknown"
	}
}

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// ID returns the node's identity, fresh for every created or copied node
	ID() uuid.UUID

	// Name returns the node's name (last path component); "/" for the root
	Name() string

	// Kind returns whether the node is a directory or a file
	Kind() NodeKind

	// IsDir is shorthand for Kind() == DirNodeKind
	IsDir() bool

	// Path returns the absolute canonical path to the node
	Path() string

	// Child returns the named child of a directory
	Child(name string) (NodeInfo, bool)

	// ChildCount returns the number of direct children; 0 for files
	ChildCount() int
}
