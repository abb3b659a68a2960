package cache

// ScopedKeyer wraps a Keyer with a prefix so separate builds or renderings
// can share one cache directory without mixing entries.
//
// Example usage:
//
//	// Keys for one release
//	keyer := NewScopedKeyer(nil, buildinfo.Version+"/")
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
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DatasetKey generates a prefixed key for decoded snapshots.
func (k *ScopedKeyer) DatasetKey(contentHash string) string {
	return k.prefix + k.inner.DatasetKey(contentHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(sequenceHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sequenceHash, opts)
}
