package cache

import "fmt"

// Keyer derives cache keys. Implementations must be deterministic: equal
// inputs give equal keys and any option change gives a different key.
type Keyer interface {
	// DatasetKey identifies a decoded snapshot by its file content hash.
	DatasetKey(contentHash string) string

	// ArtifactKey identifies one rendered frame of a snapshot sequence.
	// sequenceHash covers every snapshot up to the frame's own.
	ArtifactKey(sequenceHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options a frame depends on.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Frame      int     `json:"frame"`
	Frames     int     `json:"frames"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	StartIndex *int    `json:"start_index,omitempty"`
	YLabel     string  `json:"y_label"`
	Grouped    bool    `json:"grouped"`
	Easing     string  `json:"easing"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DatasetKey returns "dataset:<hash>".
func (DefaultKeyer) DatasetKey(contentHash string) string {
	return fmt.Sprintf("dataset:%s", contentHash)
}

// ArtifactKey hashes the sequence hash together with every option.
func (DefaultKeyer) ArtifactKey(sequenceHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sequenceHash, opts)
}

// SequenceHash folds content hashes into one hash covering all of them, in
// order.
func SequenceHash(hashes ...string) string {
	return hashKey("sequence", hashes)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
