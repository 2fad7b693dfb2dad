package domain

import "time"

// ArtifactKind classifies a written artifact.
type ArtifactKind string

const (
	// ArtifactCompiled is the post-processed component output.
	ArtifactCompiled ArtifactKind = "compiled"
	// ArtifactOriginal is the pre-post-processing typed component output.
	ArtifactOriginal ArtifactKind = "original"
	// ArtifactAncillary is the output of a non-component source file.
	ArtifactAncillary ArtifactKind = "ancillary"
)

// Artifact records one file written by a build.
type Artifact struct {
	Target string       `json:"target"`
	Source string       `json:"source"`
	Path   string       `json:"path"`
	Kind   ArtifactKind `json:"kind"`
	Hash   string       `json:"hash,omitzero"`
}

// Manifest is the record of every artifact written by the last build.
type Manifest struct {
	Timestamp time.Time  `json:"timestamp,omitzero"`
	Dest      string     `json:"dest,omitzero"`
	Artifacts []Artifact `json:"artifacts"`
}
