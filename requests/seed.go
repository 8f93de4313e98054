package requests

import (
	"github.com/n3xus/n3xus/filesystem"
	"github.com/n3xus/n3xus/internal/util"
)

// SeedResult counts what [Seed] did
type SeedResult struct {
	Directories int
	Files       int
	Failed      int
}

// Seed applies reqs to fs. Directories are created first (mkdir -p from
// the root) so file requests may appear in any order. Invalid or failing
// requests are logged and skipped.
func Seed(fs *filesystem.FileSystem, reqs []*NodeRequest) SeedResult {
	logger := util.GetLogger("Requests.Seed")

	var res SeedResult
	var dirRequests, fileRequests []*NodeRequest
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			logger.Warn().Err(err).Msg("Skipping invalid node request")
			res.Failed++
			continue
		}
		switch req.Type {
		case DirNodeType:
			dirRequests = append(dirRequests, req)
		case FileNodeType:
			fileRequests = append(fileRequests, req)
		}
	}
	logger.Debug().
		Int("files", len(fileRequests)).
		Int("directories", len(dirRequests)).
		Msg("Sorted node requests")

	for _, req := range dirRequests {
		if _, err := fs.AddDirNode(req.Path); err != nil {
			logger.Debug().Str("path", req.Path).Err(err).Msg("Failed to add directory request")
			res.Failed++
			continue
		}
		res.Directories++
	}
	for _, req := range fileRequests {
		if _, err := fs.AddFileNode(req.Path); err != nil {
			logger.Debug().Str("path", req.Path).Err(err).Msg("Failed to add file request")
			res.Failed++
			continue
		}
		res.Files++
	}
	return res
}
