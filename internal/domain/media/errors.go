package media

import "errors"

// Upload pipeline errors, grouped the way the HTTP layer reports them:
// client input, processing, infrastructure.
var (
	// client input
	ErrEmptyPayload      = errors.New("empty payload")
	ErrPayloadTooLarge   = errors.New("payload exceeds maximum size")
	ErrUnsupportedFormat = errors.New("unsupported media format")
	ErrUnknownPurpose    = errors.New("unknown media purpose")

	// processing
	ErrDecodeFailure        = errors.New("media content failed to decode")
	ErrUnsupportedColorMode = errors.New("unsupported color mode")
	ErrDerivativeFailure    = errors.New("derivative generation failed")

	// infrastructure
	ErrWriteFailure          = errors.New("asset write failed")
	ErrRandomnessUnavailable = errors.New("randomness source unavailable")

	// store
	ErrNotFound      = errors.New("asset not found")
	ErrAlreadyExists = errors.New("asset name already exists")

	ErrInvalidName = errors.New("invalid asset name")
)

func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyPayload) ||
		errors.Is(err, ErrPayloadTooLarge) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrUnknownPurpose)
}

func IsProcessingError(err error) bool {
	return errors.Is(err, ErrDecodeFailure) ||
		errors.Is(err, ErrUnsupportedColorMode) ||
		errors.Is(err, ErrDerivativeFailure)
}
