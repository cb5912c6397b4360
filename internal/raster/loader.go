package raster

import (
	"fmt"
	"sync"

	"github.com/disintegration/imaging"
)

// RasterCache provides thread-safe caching of loaded rasters to avoid
// redundant disk reads and decodes.
//
// The cache stores decoded Raster values keyed by their file path. Once a
// file is loaded, subsequent Load() calls for the same path return a copy of
// the cached raster without disk I/O. Load returns a Clone so callers can
// mutate their raster freely without corrupting the cache.
//
// RasterCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached rasters remain in memory until explicitly removed via Evict() or
// Clear(). For long-running processes handling many images, consider
// periodic cleanup to prevent unbounded memory growth.
type RasterCache struct {
	mu      sync.RWMutex
	rasters map[string]*Raster
}

// NewRasterCache creates and initializes a new empty raster cache.
func NewRasterCache() *RasterCache {
	return &RasterCache{
		rasters: make(map[string]*Raster),
	}
}

// Load retrieves a raster from the cache or loads it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. PNG, JPEG, GIF,
//     TIFF and BMP are supported; JPEG EXIF orientation is honored.
//
// Returns:
//   - *Raster: An independent copy of the decoded raster.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The raster is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
func (c *RasterCache) Load(path string) (*Raster, error) {
	c.mu.RLock()
	if r, ok := c.rasters[path]; ok {
		c.mu.RUnlock()
		return r.Clone(), nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	r := FromImage(img)

	c.mu.Lock()
	c.rasters[path] = r
	c.mu.Unlock()

	return r.Clone(), nil
}

// Clear removes all rasters from the cache, freeing the associated memory.
func (c *RasterCache) Clear() {
	c.mu.Lock()
	c.rasters = make(map[string]*Raster)
	c.mu.Unlock()
}

// Evict removes a specific raster from the cache by its path.
//
// If the path is not in the cache, this method does nothing. After eviction,
// the next Load() call for this path will read from disk.
func (c *RasterCache) Evict(path string) {
	c.mu.Lock()
	delete(c.rasters, path)
	c.mu.Unlock()
}
