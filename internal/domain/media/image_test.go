package media

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, alpha bool) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	a := uint8(255)
	if alpha {
		a = 128
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: a})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func gifBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	palette := []color.Color{color.White, color.Black, color.RGBA{R: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, uint8((x+y)%3))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))
	return buf.Bytes()
}

func avatarPolicy() Policy {
	return DefaultPolicies(5<<20, 10<<20)[PurposeAvatar]
}

func decodeDims(t *testing.T, data []byte) (string, int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return format, cfg.Width, cfg.Height
}

func TestNormalize_DownscalesIntoEnvelope(t *testing.T) {
	pol := avatarPolicy()
	data := pngBytes(t, 1024, 512, false)

	n, err := Normalize(data, Detection{Format: FormatPNG, Width: 1024, Height: 512}, pol)
	require.NoError(t, err)

	assert.Equal(t, FormatPNG, n.Format)
	assert.Equal(t, 512, n.Width)
	assert.Equal(t, 256, n.Height, "aspect ratio must survive the downscale")

	format, w, h := decodeDims(t, n.Data)
	assert.Equal(t, "png", format)
	assert.Equal(t, 512, w)
	assert.Equal(t, 256, h)
}

func TestNormalize_SmallImagePassesThrough(t *testing.T) {
	pol := avatarPolicy()
	data := jpegBytes(t, 100, 80)

	n, err := Normalize(data, Detection{Format: FormatJPEG, Width: 100, Height: 80}, pol)
	require.NoError(t, err)

	assert.Equal(t, 100, n.Width)
	assert.Equal(t, 80, n.Height)
	assert.Equal(t, data, n.Data, "in-envelope payloads keep their original bytes")
}

func TestNormalize_NeverUpscales(t *testing.T) {
	pol := avatarPolicy()
	data := pngBytes(t, 50, 30, false)

	n, err := Normalize(data, Detection{Format: FormatPNG, Width: 50, Height: 30}, pol)
	require.NoError(t, err)

	assert.Equal(t, 50, n.Width)
	assert.Equal(t, 30, n.Height)
}

func TestNormalize_KeepsAlphaInPNG(t *testing.T) {
	pol := avatarPolicy()
	data := pngBytes(t, 800, 800, true)

	n, err := Normalize(data, Detection{Format: FormatPNG, Width: 800, Height: 800}, pol)
	require.NoError(t, err)

	assert.Equal(t, FormatPNG, n.Format)
	format, w, h := decodeDims(t, n.Data)
	assert.Equal(t, "png", format)
	assert.Equal(t, 512, w)
	assert.Equal(t, 512, h)
}

func TestNormalize_GIFStaysGIF(t *testing.T) {
	pol := avatarPolicy()
	data := gifBytes(t, 600, 400)

	n, err := Normalize(data, Detection{Format: FormatGIF, Width: 600, Height: 400}, pol)
	require.NoError(t, err)

	assert.Equal(t, FormatGIF, n.Format)
	format, _, _ := decodeDims(t, n.Data)
	assert.Equal(t, "gif", format)
}

func TestNormalize_CorruptBody(t *testing.T) {
	pol := avatarPolicy()
	data := pngBytes(t, 64, 64, false)
	// keep the magic header, destroy the IDAT payload
	for i := 40; i < len(data); i++ {
		data[i] = 0
	}

	_, err := Normalize(data, Detection{Format: FormatPNG, Width: 64, Height: 64}, pol)
	require.ErrorIs(t, err, ErrDecodeFailure)
}

func TestRenderDerivative_BoundsAndFlattens(t *testing.T) {
	pol := avatarPolicy()
	require.Len(t, pol.Derivatives, 1)
	spec := pol.Derivatives[0]

	data := pngBytes(t, 512, 256, true)
	n, err := Normalize(data, Detection{Format: FormatPNG, Width: 512, Height: 256}, pol)
	require.NoError(t, err)

	encoded, err := RenderDerivative(n.Raster, spec)
	require.NoError(t, err)

	format, w, h := decodeDims(t, encoded)
	assert.Equal(t, "jpeg", format, "thumbnail is always JPEG, alpha flattened onto white")
	assert.Equal(t, 128, w)
	assert.Equal(t, 64, h)
}

func TestRenderDerivative_NeverUpscales(t *testing.T) {
	spec := DerivativeSpec{Tag: "thumb", MaxWidth: 128, MaxHeight: 128, Format: FormatJPEG, Quality: 80}

	small := image.NewRGBA(image.Rect(0, 0, 40, 20))
	encoded, err := RenderDerivative(small, spec)
	require.NoError(t, err)

	_, w, h := decodeDims(t, encoded)
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"landscape downscale", 1024, 512, 512, 512, 512, 256},
		{"portrait downscale", 512, 1024, 512, 512, 256, 512},
		{"exact fit", 512, 512, 512, 512, 512, 512},
		{"already inside", 100, 80, 512, 512, 100, 80},
		{"extreme ratio keeps a pixel", 10000, 1, 128, 128, 128, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
