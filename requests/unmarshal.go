package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingPath = errors.New("node request is missing a path")
	ErrUnknownType = errors.New("unknown node type")
)

// Validate checks the request can be applied
func (r *NodeRequest) Validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return ErrMissingPath
	}
	switch r.Type {
	case DirNodeType, FileNodeType:
		return nil
	default:
		return fmt.Errorf("%w %q at path %s", ErrUnknownType, r.Type, r.Path)
	}
}

// UnmarshalNodeRequests decodes a list of node requests. format is a file
// extension: ".json", ".yaml" or ".yml". Entries are not validated.
func UnmarshalNodeRequests(data []byte, format string) ([]*NodeRequest, error) {
	var reqs []*NodeRequest
	switch strings.ToLower(format) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &reqs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal node requests: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &reqs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal node requests: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown node definition format: %s", format)
	}
	// a null entry in the list decodes to nil
	reqs = deleteNil(reqs)
	return reqs, nil
}

// LoadNodeRequestsFile reads and decodes a node-definition file, choosing
// the format by extension
func LoadNodeRequestsFile(path string) ([]*NodeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalNodeRequests(data, filepath.Ext(path))
}

func deleteNil(reqs []*NodeRequest) []*NodeRequest {
	out := reqs[:0]
	for _, r := range reqs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
