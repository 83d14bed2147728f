package sharecard

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Cache stores rendered share cards on disk so a card is only composed once
// per (slug, verdict, match count). cards are invalidated implicitly: the
// cache key changes whenever the underlying counts change.
type Cache struct {
	basePath string
}

func NewCache(basePath string) (*Cache, error) {
	absBasePath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid card cache path '%s': %w", basePath, err)
	}
	if err := os.MkdirAll(absBasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create card cache directory '%s': %w", absBasePath, err)
	}
	log.Printf("sharecard: initialized card cache at %s", absBasePath)
	return &Cache{basePath: absBasePath}, nil
}

// Path returns the absolute file path for a cache key, refusing keys that
// would escape the cache directory.
func (c *Cache) Path(key string) (string, error) {
	full := filepath.Join(c.basePath, key)
	if !strings.HasPrefix(filepath.Clean(full), c.basePath) {
		return "", fmt.Errorf("invalid card cache key '%s'", key)
	}
	return full, nil
}

// Has reports whether a rendered card already exists for key.
func (c *Cache) Has(key string) bool {
	path, err := c.Path(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
