package requests

import (
	"testing"

	"github.com/n3xus/n3xus/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS()
	reqs := []*NodeRequest{
		// file listed before its directory
		{Path: "/docs/guide/intro.txt", Type: FileNodeType},
		{Path: "/docs/guide", Type: DirNodeType},
		{Path: "/tmp", Type: DirNodeType},
		{Path: "/tmp", Type: DirNodeType},
		{Path: "top.txt", Type: FileNodeType},
	}

	res := Seed(fs, reqs)

	assert.Equal(t, SeedResult{Directories: 3, Files: 2}, res, "repeated mkdir -p is not a failure")

	names, err := fs.ListDirectory("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "tmp", "top.txt"}, names)

	node, err := fs.Resolve("/docs/guide/intro.txt")
	require.NoError(t, err)
	assert.False(t, node.IsDir())
	assert.Equal(t, "/", fs.CurrentPath(), "seeding leaves the cursor at the root")
}

func TestSeed_Failures(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS()
	reqs := []*NodeRequest{
		{Path: "/f", Type: FileNodeType},
		{Path: "/f", Type: FileNodeType},    // exists
		{Path: "/f/sub", Type: DirNodeType}, // through a file
		{Path: "/x", Type: "link"},          // invalid type
		{Path: "", Type: DirNodeType},       // invalid path
		{Path: "/ok", Type: DirNodeType},
	}

	res := Seed(fs, reqs)

	assert.Equal(t, SeedResult{Directories: 1, Files: 1, Failed: 4}, res)
	names, err := fs.ListDirectory("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "ok"}, names)
}
