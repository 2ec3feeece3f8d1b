package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Normalized is the in-memory result of decoding and bounding an
// accepted payload: the raster the derivative generator reads from and
// the encoded bytes to persist as the original artifact.
type Normalized struct {
	Raster image.Image
	Data   []byte
	Format Format
	Width  int
	Height int
}

// Normalize decodes validated bytes, flattens alpha or palette content
// when the target encoding cannot carry it, and downscales
// proportionally so the longer edge fits the policy envelope. Sources
// already inside the envelope keep their original dimensions and bytes.
func Normalize(data []byte, det Detection, pol Policy) (*Normalized, error) {
	img, decoded, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// validated by magic bytes and config probe, so this is a
		// corrupt body rather than a wrong kind
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty raster", ErrDecodeFailure)
	}

	outFormat := Format(decoded)
	if !encodable(outFormat) {
		// no encoder for the source format; fall back to lossy output
		outFormat = FormatJPEG
	}

	needsFlatten := outFormat == FormatJPEG && !isOpaque(img)
	targetW, targetH := fitWithin(bounds.Dx(), bounds.Dy(), pol.MaxWidth, pol.MaxHeight)
	needsResize := targetW < bounds.Dx() || targetH < bounds.Dy()

	if !needsResize && !needsFlatten && outFormat == det.Format {
		// pass the payload through untouched; recompressing an
		// in-envelope image only loses fidelity
		return &Normalized{
			Raster: img,
			Data:   data,
			Format: outFormat,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		}, nil
	}

	raster := rescale(img, targetW, targetH, needsFlatten)

	encoded, err := encodeRaster(raster, outFormat, pol.Quality)
	if err != nil {
		return nil, err
	}

	return &Normalized{
		Raster: raster,
		Data:   encoded,
		Format: outFormat,
		Width:  targetW,
		Height: targetH,
	}, nil
}

// RenderDerivative produces one downscaled re-encoding of the
// normalized raster. The source raster is only read, so derivative
// computations are order-insensitive.
func RenderDerivative(src image.Image, spec DerivativeSpec) ([]byte, error) {
	bounds := src.Bounds()
	targetW, targetH := fitWithin(bounds.Dx(), bounds.Dy(), spec.MaxWidth, spec.MaxHeight)

	flatten := spec.Format == FormatJPEG && !isOpaque(src)
	raster := rescale(src, targetW, targetH, flatten)

	encoded, err := encodeRaster(raster, spec.Format, spec.Quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDerivativeFailure, spec.Tag, err)
	}
	return encoded, nil
}

// fitWithin bounds dimensions to a box preserving aspect ratio; it
// never scales up and never returns less than one pixel.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	targetW, targetH := w, h

	if maxW > 0 && targetW > maxW {
		ratio := float64(maxW) / float64(targetW)
		targetW = maxW
		targetH = int(float64(targetH) * ratio)
	}
	if maxH > 0 && targetH > maxH {
		ratio := float64(maxH) / float64(targetH)
		targetH = maxH
		targetW = int(float64(targetW) * ratio)
	}

	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}
	return targetW, targetH
}

// rescale draws src into a fresh raster of the target size using
// CatmullRom resampling. With flatten set the destination starts as an
// opaque white canvas so translucent pixels composite onto it.
func rescale(src image.Image, w, h int, flatten bool) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	op := draw.Src
	if flatten {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		op = draw.Over
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), op, nil)
	return dst
}

func encodable(f Format) bool {
	switch f {
	case FormatJPEG, FormatPNG, FormatGIF:
		return true
	}
	return false
}

func encodeRaster(img image.Image, f Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch f {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatGIF:
		err = gif.Encode(&buf, img, nil)
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	default:
		return nil, fmt.Errorf("%w: no encoder for %s", ErrUnsupportedColorMode, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", ErrUnsupportedColorMode, f, err)
	}
	return buf.Bytes(), nil
}

func isOpaque(img image.Image) bool {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
