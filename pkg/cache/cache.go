// Package cache stores rendered artifacts keyed by their inputs.
//
// Rendering the same graph with the same options always produces the
// same bytes, so the CLI caches artifacts under a key derived from the
// graph content and render options. A cache is strictly an
// optimization: every implementation may drop entries at any time and
// a miss only costs a re-render.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for the pipeline's cacheable products.
type Keyer interface {
	// GraphKey identifies a graph by its serialized content.
	GraphKey(graphJSON []byte) string

	// ArtifactKey identifies a rendered artifact by the graph it came
	// from, the plot form, the output format, and the render options.
	ArtifactKey(graphHash, form, format string, opts any) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey implements Keyer.
func (DefaultKeyer) GraphKey(graphJSON []byte) string {
	return "graph:" + Hash(graphJSON)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(graphHash, form, format string, opts any) string {
	return hashKey("artifact", graphHash, form, format, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so callers sharing one cache
// directory get separate namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GraphKey generates a prefixed graph key.
func (k *ScopedKeyer) GraphKey(graphJSON []byte) string {
	return k.prefix + k.inner.GraphKey(graphJSON)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(graphHash, form, format string, opts any) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, form, format, opts)
}
