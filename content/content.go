// Package content defines the boundary to the content-decoding collaborator:
// the component that resolves a textual path into an already-classified,
// decoded payload. The asset manager performs only GPU-facing transformation
// (pixel decode to RGBA, shader compilation) on top of what a Loader returns.
package content

import (
	"errors"
	"strings"
)

// Loader errors.
var (
	// ErrNotFound is returned when no content exists for the given path.
	ErrNotFound = errors.New("content: not found")

	// ErrBadManifest is returned when a texture-array manifest cannot be
	// parsed or references no layers.
	ErrBadManifest = errors.New("content: bad texture-array manifest")
)

// Kind classifies a decoded payload.
type Kind uint8

const (
	// KindRaw is an unclassified byte payload, kept resident as-is.
	KindRaw Kind = iota

	// KindTexture is encoded image bytes for a single 2D texture.
	KindTexture

	// KindTextureArray is a set of per-layer image byte blobs plus a
	// declared per-layer size.
	KindTextureArray

	// KindShader is WGSL shader source plus its declared pipeline stages.
	KindShader
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindTexture:
		return "Texture"
	case KindTextureArray:
		return "TextureArray"
	case KindShader:
		return "Shader"
	default:
		return "Unknown"
	}
}

// ShaderStages is a bit set of pipeline stages a shader source declares.
type ShaderStages uint8

const (
	// StageVertex marks a vertex entry point.
	StageVertex ShaderStages = 1 << iota

	// StageFragment marks a fragment entry point.
	StageFragment

	// StageCompute marks a compute entry point.
	StageCompute
)

// Has reports whether all stages in s2 are present in s.
func (s ShaderStages) Has(s2 ShaderStages) bool { return s&s2 == s2 }

// String returns a compact form such as "vertex|fragment".
func (s ShaderStages) String() string {
	var parts []string
	if s.Has(StageVertex) {
		parts = append(parts, "vertex")
	}
	if s.Has(StageFragment) {
		parts = append(parts, "fragment")
	}
	if s.Has(StageCompute) {
		parts = append(parts, "compute")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Asset is a decoded, classified payload produced by a Loader. Exactly the
// fields relevant to Kind are populated.
type Asset struct {
	// Kind selects which fields below are meaningful.
	Kind Kind

	// Data holds encoded image bytes (KindTexture) or the raw payload
	// (KindRaw).
	Data []byte

	// Layers holds one encoded image blob per array layer
	// (KindTextureArray).
	Layers [][]byte

	// LayerWidth and LayerHeight are the declared per-layer dimensions
	// every layer must match (KindTextureArray).
	LayerWidth  uint32
	LayerHeight uint32

	// Source is WGSL shader source (KindShader).
	Source string

	// Stages are the pipeline stages declared by Source (KindShader).
	Stages ShaderStages
}

// Loader resolves a path into a decoded payload. Priority is a scheduling
// hint for the loader's own internals; the asset manager passes it through
// unchanged and attaches no meaning to it.
//
// Load is called from a single background goroutine, one request at a time,
// so implementations need not be safe for concurrent use.
type Loader interface {
	Load(path string, priority int) (*Asset, error)
}
