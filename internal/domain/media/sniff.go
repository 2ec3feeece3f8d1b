package media

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	_ "image/gif"  // register GIF decoder for the content probe
	_ "image/jpeg" // register JPEG decoder for the content probe
	_ "image/png"  // register PNG decoder for the content probe

	_ "golang.org/x/image/webp" // probe identifies mislabeled webp instead of failing blind
)

// Detection is the validator's accepted result: the content's true
// format plus the decoded dimensions from the config probe.
type Detection struct {
	Format Format
	Width  int
	Height int
}

var magicTable = []struct {
	prefix []byte
	format Format
}{
	{[]byte("\x89PNG\r\n\x1a\n"), FormatPNG},
	{[]byte("\xff\xd8\xff"), FormatJPEG},
	{[]byte("GIF87a"), FormatGIF},
	{[]byte("GIF89a"), FormatGIF},
	{[]byte("RIFF"), FormatWebP},
}

func sniffMagic(data []byte) (Format, bool) {
	for _, m := range magicTable {
		if bytes.HasPrefix(data, m.prefix) {
			return m.format, true
		}
	}
	return "", false
}

// Detect inspects the payload content and declares it acceptable under
// the policy or rejects it. The declared filename contributes only a
// candidate extension; acceptance is decided by magic bytes and a decode
// probe, never by the client's label.
func Detect(data []byte, filename string, pol Policy) (Detection, error) {
	if len(data) == 0 {
		return Detection{}, ErrEmptyPayload
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !pol.AllowsExtension(ext) {
		return Detection{}, fmt.Errorf("%w: extension %q not accepted", ErrUnsupportedFormat, ext)
	}

	format, ok := sniffMagic(data)
	if !ok {
		return Detection{}, fmt.Errorf("%w: content does not match any accepted kind", ErrUnsupportedFormat)
	}

	// The magic check is cheap but forgeable; the probe must actually
	// parse an image header.
	cfg, probed, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || Format(probed) != format {
		return Detection{}, fmt.Errorf("%w: content does not decode as %s", ErrUnsupportedFormat, format)
	}
	if !pol.AllowsKind(format) {
		return Detection{}, fmt.Errorf("%w: kind %s not accepted", ErrUnsupportedFormat, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Detection{}, fmt.Errorf("%w: image has zero size", ErrUnsupportedFormat)
	}

	return Detection{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
