// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpures creates GPU-resident resources through gogpu/wgpu's HAL:
// texture allocation and upload, per-layer array writes, and WGSL shader
// compilation. All functions are safe to call from worker goroutines; queue
// submission is serialized by the HAL itself.
package gpures

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Creation errors.
var (
	// ErrNilDevice is returned when no HAL device is available.
	ErrNilDevice = errors.New("gpures: nil HAL device")

	// ErrInvalidDimensions is returned for zero or mismatched sizes.
	ErrInvalidDimensions = errors.New("gpures: invalid dimensions")
)

// bytesPerPixel is fixed at 4: every upload path feeds RGBA8.
const bytesPerPixel = 4

// rowAlignment is the HAL row pitch requirement for texture copies.
const rowAlignment = 256

// textureUsage covers sampling plus upload for streamed assets.
const textureUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst

// NewTexture2D creates a single-layer RGBA8 texture, uploads pix into it and
// returns the texture with its default view. pix must be tightly packed
// width*height*4 bytes.
func NewTexture2D(device hal.Device, queue hal.Queue, label string, width, height uint32, pix []byte) (hal.Texture, hal.TextureView, error) {
	if device == nil {
		return nil, nil, ErrNilDevice
	}
	if width == 0 || height == 0 {
		return nil, nil, ErrInvalidDimensions
	}
	if uint32(len(pix)) != width*height*bytesPerPixel {
		return nil, nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidDimensions, len(pix), width, height)
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         textureUsage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create texture: %w", err)
	}

	if err := WriteLayer(queue, tex, width, height, 0, pix); err != nil {
		device.DestroyTexture(tex)
		return nil, nil, err
	}

	view, err := createDefaultView(device, tex, label)
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, err
	}
	return tex, view, nil
}

// NewTextureArray creates an RGBA8 texture with the given number of array
// layers and returns it with an all-layers view. Layer contents are written
// afterwards with WriteLayer; the texture is not considered complete until
// every layer slot has been written.
func NewTextureArray(device hal.Device, queue hal.Queue, label string, width, height, layers uint32) (hal.Texture, hal.TextureView, error) {
	_ = queue // layers are written by the caller, one WriteLayer each

	if device == nil {
		return nil, nil, ErrNilDevice
	}
	if width == 0 || height == 0 || layers == 0 {
		return nil, nil, ErrInvalidDimensions
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: layers},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         textureUsage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create texture array: %w", err)
	}

	view, err := createDefaultView(device, tex, label)
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, err
	}
	return tex, view, nil
}

// WriteLayer uploads tightly packed RGBA8 pixels into one array layer,
// re-padding rows to the HAL's 256-byte pitch requirement when the tight
// stride is not already aligned. Concurrent calls for distinct layers of the
// same texture are safe: each write targets a disjoint Origin3D.Z and the HAL
// serializes submission.
func WriteLayer(queue hal.Queue, tex hal.Texture, width, height, layer uint32, pix []byte) error {
	data, bytesPerRow := alignRows(pix, width, height)

	dst := &hal.ImageCopyTexture{
		Texture:  tex,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: layer},
		Aspect:   gputypes.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  bytesPerRow,
		RowsPerImage: height,
	}
	size := &hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}

	if err := queue.WriteTexture(dst, data, layout, size); err != nil {
		return fmt.Errorf("write layer %d: %w", layer, err)
	}
	return nil
}

// alignRows returns pix with each row padded out to rowAlignment, along with
// the resulting row pitch. Already-aligned input is returned as-is.
func alignRows(pix []byte, width, height uint32) ([]byte, uint32) {
	row := width * bytesPerPixel
	if row%rowAlignment == 0 {
		return pix, row
	}
	pitch := (row/rowAlignment + 1) * rowAlignment
	out := make([]byte, pitch*height)
	for y := uint32(0); y < height; y++ {
		copy(out[y*pitch:y*pitch+row], pix[y*row:(y+1)*row])
	}
	return out, pitch
}

// createDefaultView creates a view inheriting format, dimension and layer
// range from the texture. Zero values mean "all remaining" per the HAL
// contract, so the same descriptor serves both 2D and array textures.
func createDefaultView(device hal.Device, tex hal.Texture, label string) (hal.TextureView, error) {
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:           label + " (view)",
		Format:          gputypes.TextureFormatUndefined,
		Dimension:       gputypes.TextureViewDimensionUndefined,
		Aspect:          gputypes.TextureAspectAll,
		BaseMipLevel:    0,
		MipLevelCount:   0,
		BaseArrayLayer:  0,
		ArrayLayerCount: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture view: %w", err)
	}
	return view, nil
}
