// Package assets provides asynchronous asset streaming and a GPU resource
// cache for the GoGPU ecosystem.
//
// # Overview
//
// assets turns a textual resource path into a strongly typed, GPU-resident
// handle while file loading, pixel decoding, shader compilation and GPU
// upload all happen off the calling thread. A single background worker owns
// the content loader; decoded payloads are turned into GPU resources on a
// shared worker pool and handed back to the caller over channels.
//
// # Quick Start
//
//	m, err := assets.NewManager(assets.Config{
//	    Device: device, // hal.Device
//	    Queue:  queue,  // hal.Queue
//	    Loader: content.NewFSLoader(os.DirFS("data")),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	sprite := assets.Request[*assets.Texture2D](m, "sprites/hero.png", 0)
//
//	// Once per frame:
//	if err := m.Update(); err != nil {
//	    // a load failed; the Guid is carried in *assets.LoadError
//	}
//	if tex, ok := assets.TryGet(m, sprite); ok {
//	    _ = tex // bind tex.View() in a render pass
//	}
//
// # Handles and identity
//
// Every path resolves to a process-unique Guid on first request; repeated
// requests for the same path always return a handle with the same Guid.
// Handles are copyable, do not own the underlying resource, and may outlive
// it; lookups after Delete simply miss.
//
// # Resource kinds
//
// The cache stores a closed set of kinds: raw bytes, 2D textures, texture
// arrays and shader modules. The type parameter on Ptr makes retrieving an
// entry as the wrong kind unrepresentable in correct code; the lookup path
// still degrades to a miss rather than panicking if it happens anyway.
//
// # Failure model
//
// Texture decode failures substitute a builtin fallback texture so rendering
// continues; shader compile failures surface as request-level errors, since a
// missing shader is not renderable. Worker-side errors never panic; they are
// always converted to a result message and reported by Update.
package assets
