package assets

import (
	"fmt"
	"sync"

	"github.com/gogpu/assets/content"
	"github.com/gogpu/assets/internal/gpures"
	"github.com/gogpu/assets/internal/imaging"
)

// loadRequest travels from Request to the loader worker.
type loadRequest struct {
	path     string
	guid     Guid
	priority int
}

// loadResult travels back from the workers to Update. Exactly one of
// resource and err is set.
type loadResult struct {
	guid     Guid
	resource Resource
	err      error
}

// runWorker is the loader worker: a single goroutine owning the content
// loader for the Manager's lifetime. Requests are dequeued in submission
// order; each decoded payload's GPU step is submitted to the pool as an
// independent unit of work, so completion order across distinct Guids is
// unordered.
func (m *Manager) runWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case req := <-m.requests:
			m.serve(req)
		}
	}
}

// serve runs the loader for one request and hands the GPU step to the pool.
func (m *Manager) serve(req loadRequest) {
	asset, err := m.loader.Load(req.path, req.priority)
	if err != nil {
		m.deliver(loadResult{guid: req.guid, err: fmt.Errorf("load %q: %w", req.path, err)})
		return
	}
	m.pool.Submit(func() {
		m.deliver(m.produce(req, asset))
	})
}

// deliver sends a result without wedging a worker on a closed Manager.
func (m *Manager) deliver(res loadResult) {
	select {
	case m.results <- res:
	case <-m.done:
	}
}

// produce turns a decoded payload into a cacheable resource. Worker-side
// failures never panic; they become error results.
func (m *Manager) produce(req loadRequest, asset *content.Asset) loadResult {
	switch asset.Kind {
	case content.KindRaw:
		return loadResult{guid: req.guid, resource: NewRaw(asset.Data)}

	case content.KindTexture:
		return m.produceTexture(req, asset)

	case content.KindTextureArray:
		return m.produceTextureArray(req, asset)

	case content.KindShader:
		return m.produceShader(req, asset)

	default:
		return loadResult{guid: req.guid, err: fmt.Errorf("unknown content kind %d for %q", asset.Kind, req.path)}
	}
}

// produceTexture decodes image bytes and uploads a 2D texture. A decode
// failure substitutes the builtin fallback pattern instead of failing the
// request: visual degradation, not request failure.
func (m *Manager) produceTexture(req loadRequest, asset *content.Asset) loadResult {
	img, err := imaging.Decode(asset.Data)
	if err != nil {
		Logger().Warn("assets: texture decode failed, substituting fallback",
			"path", req.path, "guid", req.guid, "error", err)
		img = m.fallback
	}

	tex, view, err := gpures.NewTexture2D(m.device, m.queue, req.path,
		uint32(img.Width), uint32(img.Height), img.Pix)
	if err != nil {
		return loadResult{guid: req.guid, err: fmt.Errorf("upload %q: %w", req.path, err)}
	}
	return loadResult{
		guid:     req.guid,
		resource: NewTexture2D(tex, view, uint32(img.Width), uint32(img.Height), req.path),
	}
}

// produceTextureArray decodes every layer independently and in parallel,
// each goroutine writing its own disjoint layer index. A layer that fails to
// decode, or whose dimensions differ from the declared layer size, is
// replaced by the fallback pattern tiled to the declared size; the array as
// a whole still succeeds once every slot has been written. A failed GPU
// write, by contrast, leaves a layer with undefined contents, so it fails
// the whole request.
func (m *Manager) produceTextureArray(req loadRequest, asset *content.Asset) loadResult {
	w, h := asset.LayerWidth, asset.LayerHeight
	n := uint32(len(asset.Layers))
	if n == 0 || w == 0 || h == 0 {
		return loadResult{guid: req.guid, err: fmt.Errorf("texture array %q: no layers or zero layer size", req.path)}
	}

	tex, view, err := gpures.NewTextureArray(m.device, m.queue, req.path, w, h, n)
	if err != nil {
		return loadResult{guid: req.guid, err: fmt.Errorf("create array %q: %w", req.path, err)}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var writeErr error
	for i, blob := range asset.Layers {
		wg.Add(1)
		go func(layer uint32, blob []byte) {
			defer wg.Done()
			if err := gpures.WriteLayer(m.queue, tex, w, h, layer, m.decodeLayer(req, layer, blob, w, h)); err != nil {
				mu.Lock()
				if writeErr == nil {
					writeErr = fmt.Errorf("upload %q: %w", req.path, err)
				}
				mu.Unlock()
			}
		}(uint32(i), blob)
	}
	wg.Wait()

	if writeErr != nil {
		m.device.DestroyTextureView(view)
		m.device.DestroyTexture(tex)
		return loadResult{guid: req.guid, err: writeErr}
	}

	return loadResult{
		guid:     req.guid,
		resource: NewTextureArray(tex, view, w, h, n, req.path),
	}
}

// decodeLayer decodes one array layer, substituting the tiled fallback
// pattern when the blob is undecodable or its size disagrees with the
// declared layer size.
func (m *Manager) decodeLayer(req loadRequest, layer uint32, blob []byte, w, h uint32) []byte {
	img, err := imaging.Decode(blob)
	if err != nil {
		Logger().Warn("assets: array layer decode failed, substituting fallback",
			"path", req.path, "guid", req.guid, "layer", layer, "error", err)
		return imaging.Tile(m.fallback, int(w), int(h)).Pix
	}
	if uint32(img.Width) != w || uint32(img.Height) != h {
		Logger().Warn("assets: array layer size mismatch, substituting fallback",
			"path", req.path, "guid", req.guid, "layer", layer,
			"got", fmt.Sprintf("%dx%d", img.Width, img.Height),
			"want", fmt.Sprintf("%dx%d", w, h))
		return imaging.Tile(m.fallback, int(w), int(h)).Pix
	}
	return img.Pix
}

// produceShader compiles WGSL and wraps the module. Compile failures
// propagate as request-level errors: a missing shader is not renderable, so
// there is no silent substitute.
func (m *Manager) produceShader(req loadRequest, asset *content.Asset) loadResult {
	module, err := gpures.CompileWGSL(m.device, req.path, asset.Source)
	if err != nil {
		return loadResult{guid: req.guid, err: err}
	}
	return loadResult{
		guid:     req.guid,
		resource: NewShader(module, asset.Stages, req.path),
	}
}
