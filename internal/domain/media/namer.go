package media

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// 64 bits of CSPRNG entropy per name; asset names must not be guessable.
const baseIDEntropyBytes = 8

var (
	// Single path segment, never starting with a dot.
	validNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	ownerSafeRe = regexp.MustCompile(`[^a-z0-9]+`)
)

func purposePrefix(p Purpose) string {
	if p == PurposePostMedia {
		return "post"
	}
	return "profile"
}

// NewBaseName derives the common base identifier for one upload:
// "<prefix>_<owner>_<16 hex chars>". Scoped by owner and purpose, random
// in its suffix, safe as a path segment on any filesystem.
func NewBaseName(owner string, purpose Purpose) (string, error) {
	buf := make([]byte, baseIDEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}

	safeOwner := ownerSafeRe.ReplaceAllString(strings.ToLower(owner), "")
	if safeOwner == "" {
		safeOwner = "anon"
	}

	return fmt.Sprintf("%s_%s_%s", purposePrefix(purpose), safeOwner, hex.EncodeToString(buf)), nil
}

// ObjectName is the stored name of the original artifact.
func ObjectName(base string, f Format) string {
	return base + f.Ext()
}

// DerivativeName is the stored name of a derivative; it keeps the base
// identifier so originals and derivatives correlate.
func DerivativeName(base string, spec DerivativeSpec) string {
	return spec.Tag + "_" + base + spec.Format.Ext()
}

// ValidName reports whether name is usable as an asset store key.
func ValidName(name string) bool {
	return len(name) <= 255 && validNameRe.MatchString(name)
}
