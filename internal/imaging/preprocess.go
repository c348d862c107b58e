// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging prepares food photos for upload and inference: it decodes
// common image formats, scales them down and re-encodes them as JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultMaxEdge is the maximum length of the longer image side.
	DefaultMaxEdge = 800
	// DefaultQuality is the JPEG quality (0.7 on a 0..1 scale).
	DefaultQuality = 70
	// MIMEType is the content type of every preprocessed image.
	MIMEType = "image/jpeg"
)

// Preprocessor scales images down and re-encodes them as JPEG.
// The zero value is not usable; create one with [NewPreprocessor].
type Preprocessor struct {
	maxEdge int
	quality int
	scaler  draw.Scaler
}

// Option configures a [Preprocessor].
type Option func(*Preprocessor)

// WithMaxEdge sets the maximum length of the longer side.
func WithMaxEdge(px int) Option {
	return func(p *Preprocessor) {
		if px > 0 {
			p.maxEdge = px
		}
	}
}

// WithQuality sets the JPEG quality in the range 1..100.
func WithQuality(q int) Option {
	return func(p *Preprocessor) {
		if q >= 1 && q <= 100 {
			p.quality = q
		}
	}
}

// NewPreprocessor returns a Preprocessor with the defaults overridden by opts.
func NewPreprocessor(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		maxEdge: DefaultMaxEdge,
		quality: DefaultQuality,
		scaler:  draw.CatmullRom,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultPreprocessor = NewPreprocessor()

// Preprocess runs src through the default preprocessor (800px, quality 70).
func Preprocess(src []byte) ([]byte, error) {
	return defaultPreprocessor.Process(src)
}

// Process decodes src, scales it so that the longer side is at most the
// configured maximum and encodes it as JPEG. Images are never upscaled.
// Transparent pixels are composed onto white.
func (p *Preprocessor) Process(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	bounds := img.Bounds()
	width, height := TargetSize(bounds.Dx(), bounds.Dy(), p.maxEdge)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	p.scaler.Scale(canvas, canvas.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return buf.Bytes(), nil
}

// TargetSize returns the dimensions of a width x height image scaled so that
// its longer side does not exceed maxEdge. The aspect ratio is kept, each
// side is at least 1px and images that already fit are returned unchanged.
func TargetSize(width, height, maxEdge int) (int, int) {
	if width <= 0 || height <= 0 {
		return max(width, 1), max(height, 1)
	}

	longest := max(width, height)
	if maxEdge <= 0 || longest <= maxEdge {
		return width, height
	}

	if width >= height {
		h := (height*maxEdge + width/2) / width
		return maxEdge, max(h, 1)
	}

	w := (width*maxEdge + height/2) / height
	return max(w, 1), maxEdge
}
