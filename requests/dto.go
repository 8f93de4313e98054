package requests

// NodeType is the "type" discriminator of a node definition
type NodeType string

const (
	DirNodeType  NodeType = "dir"
	FileNodeType NodeType = "file"
)

// NodeRequest is one entry of a node-definition file: a node to create in
// the tree before the session starts. Paths are taken from the root.
//
// JSON:
//
//	[{"path": "/docs", "type": "dir"}, {"path": "/docs/readme.txt", "type": "file"}]
//
// YAML:
//
//	- path: /docs
//	  type: dir
type NodeRequest struct {
	Path string   `json:"path" yaml:"path"`
	Type NodeType `json:"type" yaml:"type"`
}
