package assets

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/assets/content"
)

// Kind identifies which member of the resource union a cache entry holds.
type Kind uint8

const (
	// KindRaw is an undecoded byte payload kept resident as-is.
	KindRaw Kind = iota

	// KindTexture2D is a single-layer 2D texture, uploaded and bindable.
	KindTexture2D

	// KindTextureArray is a 2D texture with multiple array layers.
	KindTextureArray

	// KindShader is a compiled shader module.
	KindShader
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindTexture2D:
		return "Texture2D"
	case KindTextureArray:
		return "TextureArray"
	case KindShader:
		return "Shader"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Resource is the closed union of kinds the cache can hold. Presence in the
// cache implies the resource is fully uploaded and safe to bind; there is no
// partially uploaded state visible to readers.
type Resource interface {
	Kind() Kind
}

// Raw is a resident byte payload that required no GPU work.
type Raw struct {
	data []byte
}

// NewRaw wraps a byte payload as a cacheable resource.
func NewRaw(data []byte) *Raw { return &Raw{data: data} }

// Kind implements Resource.
func (*Raw) Kind() Kind { return KindRaw }

// Data returns the payload bytes. The slice is shared, not copied.
func (r *Raw) Data() []byte { return r.data }

// Texture2D is a single-layer GPU texture in RGBA8 format.
type Texture2D struct {
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
	label  string
}

// NewTexture2D wraps an uploaded HAL texture as a cacheable resource.
func NewTexture2D(tex hal.Texture, view hal.TextureView, width, height uint32, label string) *Texture2D {
	return &Texture2D{tex: tex, view: view, width: width, height: height, label: label}
}

// Kind implements Resource.
func (*Texture2D) Kind() Kind { return KindTexture2D }

// Width returns the texture width in pixels.
func (t *Texture2D) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture2D) Height() uint32 { return t.height }

// Label returns the debug label, normally the request path.
func (t *Texture2D) Label() string { return t.label }

// Texture returns the underlying HAL texture.
func (t *Texture2D) Texture() hal.Texture { return t.tex }

// View returns the default texture view for binding.
func (t *Texture2D) View() hal.TextureView { return t.view }

// String returns a string representation of the texture.
func (t *Texture2D) String() string {
	return fmt.Sprintf("Texture2D[%s %dx%d]", t.label, t.width, t.height)
}

// TextureArray is a GPU texture with multiple 2D array layers, all sharing
// one declared layer size.
type TextureArray struct {
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
	layers uint32
	label  string
}

// NewTextureArray wraps an uploaded layered HAL texture as a cacheable
// resource.
func NewTextureArray(tex hal.Texture, view hal.TextureView, width, height, layers uint32, label string) *TextureArray {
	return &TextureArray{tex: tex, view: view, width: width, height: height, layers: layers, label: label}
}

// Kind implements Resource.
func (*TextureArray) Kind() Kind { return KindTextureArray }

// Width returns the per-layer width in pixels.
func (a *TextureArray) Width() uint32 { return a.width }

// Height returns the per-layer height in pixels.
func (a *TextureArray) Height() uint32 { return a.height }

// Layers returns the number of array layers.
func (a *TextureArray) Layers() uint32 { return a.layers }

// Label returns the debug label, normally the request path.
func (a *TextureArray) Label() string { return a.label }

// Texture returns the underlying HAL texture.
func (a *TextureArray) Texture() hal.Texture { return a.tex }

// View returns the array view for binding.
func (a *TextureArray) View() hal.TextureView { return a.view }

// String returns a string representation of the array.
func (a *TextureArray) String() string {
	return fmt.Sprintf("TextureArray[%s %dx%dx%d]", a.label, a.width, a.height, a.layers)
}

// Shader is a compiled shader module together with the pipeline stages its
// source declared.
type Shader struct {
	module hal.ShaderModule
	stages content.ShaderStages
	label  string
}

// NewShader wraps a compiled HAL shader module as a cacheable resource.
func NewShader(module hal.ShaderModule, stages content.ShaderStages, label string) *Shader {
	return &Shader{module: module, stages: stages, label: label}
}

// Kind implements Resource.
func (*Shader) Kind() Kind { return KindShader }

// Module returns the compiled HAL shader module.
func (s *Shader) Module() hal.ShaderModule { return s.module }

// Stages returns the pipeline stages declared by the shader source.
func (s *Shader) Stages() content.ShaderStages { return s.stages }

// Label returns the debug label, normally the request path.
func (s *Shader) Label() string { return s.label }

// String returns a string representation of the shader.
func (s *Shader) String() string {
	return fmt.Sprintf("Shader[%s %s]", s.label, s.stages)
}
