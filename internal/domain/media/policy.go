package media

type Purpose string

const (
	PurposeAvatar    Purpose = "avatar"
	PurposePostMedia Purpose = "post-media"
)

func ParsePurpose(s string) (Purpose, bool) {
	switch Purpose(s) {
	case PurposeAvatar, PurposePostMedia:
		return Purpose(s), true
	}
	return "", false
}

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatWebP Format = "webp"
)

func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	case FormatGIF:
		return ".gif"
	case FormatWebP:
		return ".webp"
	}
	return ".bin"
}

func (f Format) MimeType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatGIF:
		return "image/gif"
	case FormatWebP:
		return "image/webp"
	}
	return "application/octet-stream"
}

// extensions reports the filename extensions a format may carry.
func (f Format) extensions() []string {
	if f == FormatJPEG {
		return []string{"jpg", "jpeg"}
	}
	return []string{string(f)}
}

// DerivativeSpec describes one downscaled re-encoding of an original,
// e.g. a thumbnail. Derivatives are never upscaled beyond the source.
type DerivativeSpec struct {
	Tag       string
	MaxWidth  int
	MaxHeight int
	Format    Format
	Quality   int
}

// Policy is the static per-purpose configuration: which extensions are
// accepted, how many bytes, the decoded-pixel envelope and which
// derivatives to produce.
type Policy struct {
	Purpose     Purpose
	Extensions  map[string]struct{}
	MaxBytes    int64
	MaxWidth    int
	MaxHeight   int
	Quality     int
	Derivatives []DerivativeSpec
}

func (p Policy) AllowsExtension(ext string) bool {
	_, ok := p.Extensions[ext]
	return ok
}

// AllowsKind reports whether content of the given true format is
// acceptable, independent of the label the client put on it.
func (p Policy) AllowsKind(f Format) bool {
	for _, ext := range f.extensions() {
		if p.AllowsExtension(ext) {
			return true
		}
	}
	return false
}

type Policies map[Purpose]Policy

func imageExtensions() map[string]struct{} {
	return map[string]struct{}{
		"png": {}, "jpg": {}, "jpeg": {}, "gif": {},
	}
}

// DefaultPolicies mirrors production policy: avatars are bounded to a
// 512x512 envelope with a 128x128 JPEG thumbnail derivative, post media
// gets a larger envelope and no derivatives.
func DefaultPolicies(avatarMaxBytes, postMaxBytes int64) Policies {
	return Policies{
		PurposeAvatar: {
			Purpose:    PurposeAvatar,
			Extensions: imageExtensions(),
			MaxBytes:   avatarMaxBytes,
			MaxWidth:   512,
			MaxHeight:  512,
			Quality:    85,
			Derivatives: []DerivativeSpec{
				{Tag: "thumb", MaxWidth: 128, MaxHeight: 128, Format: FormatJPEG, Quality: 80},
			},
		},
		PurposePostMedia: {
			Purpose:    PurposePostMedia,
			Extensions: imageExtensions(),
			MaxBytes:   postMaxBytes,
			MaxWidth:   1920,
			MaxHeight:  1920,
			Quality:    85,
		},
	}
}
