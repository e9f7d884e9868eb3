package icon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cache is the content-addressable favicon store. A store key is the
// sha256 of the decoded bytes plus the image extension, so identical
// icons from different lookups land on the same key.
type Cache struct {
	repo Repo
}

// NewCache returns a Cache backed by repo
func NewCache(repo Repo) *Cache {
	return &Cache{repo: repo}
}

// Store parses a favicon data uri, writes its bytes under the
// content-addressed key and returns the key. It never returns the bytes;
// retrieval goes through the blob server.
func (c *Cache) Store(dataURI string) (string, error) {
	ext, data, err := ParseDataURI(dataURI)

	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	key := fmt.Sprintf("%s.%s", hex.EncodeToString(sum[:]), ext)

	if err := c.repo.Save(&Icon{Key: key, Ext: ext, Data: data}); err != nil {
		return "", err
	}

	return key, nil
}
