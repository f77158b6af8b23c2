// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FSLoader is a Loader over an fs.FS. It classifies content by file
// extension:
//
//   - .wgsl            shader source; stages detected from entry points
//   - .png .jpg .jpeg
//     .webp .bmp
//     .tiff .tif       encoded texture bytes
//   - .texarray        JSON manifest describing a texture array
//   - anything else    raw bytes
//
// A .texarray manifest declares the per-layer size and the layer images,
// resolved relative to the manifest's directory:
//
//	{"width": 64, "height": 64, "layers": ["a.png", "b.png"]}
//
// The priority argument is accepted for interface compatibility and is
// currently advisory: FSLoader serves requests synchronously in call order.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// arrayManifest is the on-disk form of a .texarray file.
type arrayManifest struct {
	Width  uint32   `json:"width"`
	Height uint32   `json:"height"`
	Layers []string `json:"layers"`
}

// Load implements Loader.
func (l *FSLoader) Load(p string, priority int) (*Asset, error) {
	_ = priority // advisory; synchronous loader has nothing to reorder

	data, err := l.read(p)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".wgsl":
		src := string(data)
		return &Asset{Kind: KindShader, Source: src, Stages: DetectStages(src)}, nil

	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".tiff", ".tif":
		return &Asset{Kind: KindTexture, Data: data}, nil

	case ".texarray":
		return l.loadArray(p, data)

	default:
		return &Asset{Kind: KindRaw, Data: data}, nil
	}
}

// loadArray parses a texture-array manifest and reads every layer blob.
// A missing layer file fails the whole load here; per-layer decode failures
// are the asset manager's concern, not the loader's.
func (l *FSLoader) loadArray(p string, data []byte) (*Asset, error) {
	var m arrayManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadManifest, p, err)
	}
	if len(m.Layers) == 0 || m.Width == 0 || m.Height == 0 {
		return nil, fmt.Errorf("%w: %s: empty layers or zero size", ErrBadManifest, p)
	}

	dir := path.Dir(p)
	layers := make([][]byte, len(m.Layers))
	for i, name := range m.Layers {
		blob, err := l.read(path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("layer %d of %s: %w", i, p, err)
		}
		layers[i] = blob
	}

	return &Asset{
		Kind:        KindTextureArray,
		Layers:      layers,
		LayerWidth:  m.Width,
		LayerHeight: m.Height,
	}, nil
}

// read fetches a file, mapping fs.ErrNotExist to ErrNotFound.
func (l *FSLoader) read(p string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, err
	}
	return data, nil
}

// DetectStages scans WGSL source for entry-point attributes and returns the
// declared stage set. Detection is textual; the authoritative check happens
// at compile time.
func DetectStages(source string) ShaderStages {
	var s ShaderStages
	if strings.Contains(source, "@vertex") {
		s |= StageVertex
	}
	if strings.Contains(source, "@fragment") {
		s |= StageFragment
	}
	if strings.Contains(source, "@compute") {
		s |= StageCompute
	}
	return s
}
