// Package cache provides render caches for svgforge.
//
// Composing a scene is cheap, but rasterizing to PNG/PDF shells out to
// librsvg and the HTTP server re-serves unchanged scenes constantly, so
// rendered artifacts are cached keyed by the scene file's content hash.
//
// Backends:
//   - [NullCache]: caching disabled (testing, --no-cache)
//   - [MemoryCache]: in-process, used by the preview server by default
//   - [FileCache]: on-disk under ~/.cache/svgforge, used by the CLI
//   - [RedisCache]: shared cache for multi-instance server deployments
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with an optional TTL (zero means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any backend resources.
	Close() error
}

// Keyer generates cache keys for render artifacts.
type Keyer interface {
	// RenderKey keys a rendered artifact by scene content hash, output
	// format and scale factor.
	RenderKey(contentHash, format string, scale float64) string
}

// DefaultKeyer is the standard key scheme: "render:" + sha256 over the
// components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(contentHash, format string, scale float64) string {
	return hashKey("render", contentHash, format, scale)
}

// ScopedKeyer wraps a Keyer with a prefix so callers sharing one backend
// (for example several scene directories behind one Redis) stay isolated.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(contentHash, format string, scale float64) string {
	return k.prefix + k.inner.RenderKey(contentHash, format, scale)
}
