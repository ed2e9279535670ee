package document

import "fmt"

// Kind identifies the category of document being generated.
type Kind string

const (
	// KindResume is a resume document.
	KindResume Kind = "resume"
	// KindCoverLetter is a cover letter document.
	KindCoverLetter Kind = "cover-letter"
)

// ParseKind validates a wire-format document type value.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindResume:
		return KindResume, nil
	case KindCoverLetter:
		return KindCoverLetter, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, raw)
	}
}
