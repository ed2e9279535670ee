package document

import "errors"

var (
	// ErrInvalidKind indicates an unrecognized document type value.
	ErrInvalidKind = errors.New("invalid document kind")

	// ErrEmptyCompletion indicates the model returned no usable text.
	ErrEmptyCompletion = errors.New("empty completion")
)
