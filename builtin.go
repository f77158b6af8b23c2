package assets

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/assets/content"
	"github.com/gogpu/assets/internal/gpures"
	"github.com/gogpu/assets/internal/imaging"
)

// Embedded always-resident assets. These never go through the loader worker:
// they are decoded and uploaded synchronously during NewManager, before any
// request can race them.

//go:embed builtin/fallback.png
var fallbackPNG []byte

//go:embed builtin/blit.wgsl
var blitWGSL string

//go:embed builtin/composite.wgsl
var compositeWGSL string

// Canonical paths of the builtin assets. Requesting one of these returns the
// already-cached resource without touching the worker.
const (
	// FallbackTexturePath names the checkerboard substituted for textures
	// that fail to decode.
	FallbackTexturePath = "builtin/fallback.png"

	// BlitShaderPath names the fullscreen blit shader.
	BlitShaderPath = "builtin/blit.wgsl"

	// CompositeShaderPath names the sprite composite shader.
	CompositeShaderPath = "builtin/composite.wgsl"
)

// loadBuiltins decodes the fallback texture and compiles the builtin shaders,
// inserting everything into the cache. The fallback failing to decode means a
// corrupted installation; that aborts construction, as does a builtin shader
// failing to compile.
func (m *Manager) loadBuiltins() error {
	img, err := imaging.Decode(fallbackPNG)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFallbackUnavailable, err)
	}
	tex, view, err := gpures.NewTexture2D(m.device, m.queue, FallbackTexturePath,
		uint32(img.Width), uint32(img.Height), img.Pix)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFallbackUnavailable, err)
	}
	m.fallback = img
	m.registerLocked(FallbackTexturePath,
		NewTexture2D(tex, view, uint32(img.Width), uint32(img.Height), FallbackTexturePath))

	for _, b := range []struct {
		path   string
		source string
	}{
		{BlitShaderPath, blitWGSL},
		{CompositeShaderPath, compositeWGSL},
	} {
		module, err := gpures.CompileWGSL(m.device, b.path, b.source)
		if err != nil {
			return fmt.Errorf("assets: builtin shader %s: %w", b.path, err)
		}
		m.registerLocked(b.path, NewShader(module, content.DetectStages(b.source), b.path))
	}
	return nil
}
