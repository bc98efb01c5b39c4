package watcher

import (
	"io"
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// DigestCache tracks content digests of taskfile sources so the watch loop
// can tell real edits apart from editor noise such as touched timestamps.
type DigestCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewDigestCache creates an empty digest cache.
func NewDigestCache() *DigestCache {
	return &DigestCache{
		digests: make(map[unique.Handle[string]]uint64),
	}
}

// Prime records the current digest of each path, dropping entries for paths
// that can no longer be read.
func (c *DigestCache) Prime(paths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, path := range paths {
		handle := unique.Make(path)

		sum, err := fileDigest(path)
		if err != nil {
			delete(c.digests, handle)
			continue
		}
		c.digests[handle] = sum
	}
}

// Changed returns the subset of paths whose content differs from the last
// recorded digest. Unreadable paths count as changed when they were known
// before, so deleted sources still trigger a rebuild.
func (c *DigestCache) Changed(paths []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var changed []string

	for _, path := range paths {
		handle := unique.Make(path)
		prev, known := c.digests[handle]

		sum, err := fileDigest(path)
		if err != nil {
			if known {
				delete(c.digests, handle)
				changed = append(changed, path)
			}
			continue
		}

		if !known || prev != sum {
			c.digests[handle] = sum
			changed = append(changed, path)
		}
	}

	return changed
}

// fileDigest computes the xxhash of a file's content.
func fileDigest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the watched source set
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, err
	}

	return digest.Sum64(), nil
}
