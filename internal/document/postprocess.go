// Package document turns raw model completions into rendering-ready
// documents: meta-commentary stripping, resume line classification and cover
// letter paragraph assembly. Everything here is a pure function of its input.
package document

import "strings"

// PostProcess cleans a raw completion and shapes it for rendering. It returns
// ErrEmptyCompletion when the input, or what remains of it after stripping,
// contains no usable text.
func PostProcess(raw string, kind Kind) (Document, error) {
	if strings.TrimSpace(raw) == "" {
		return Document{}, ErrEmptyCompletion
	}
	cleaned := Strip(raw)
	if cleaned == "" {
		return Document{}, ErrEmptyCompletion
	}

	switch kind {
	case KindResume:
		return Document{Kind: kind, Lines: classifyLines(cleaned)}, nil
	case KindCoverLetter:
		return Document{Kind: kind, Paragraphs: splitParagraphs(cleaned)}, nil
	default:
		return Document{}, ErrInvalidKind
	}
}

// classifyLines drops blank lines and classifies the rest in input order.
func classifyLines(text string) []ClassifiedLine {
	var out []ClassifiedLine
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		out = append(out, ClassifyLine(line))
	}
	return out
}

// splitParagraphs keeps one unit per source line. Blank lines stay in the
// sequence as break markers so renderers can insert vertical spacing.
func splitParagraphs(text string) []Paragraph {
	var out []Paragraph
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			out = append(out, Paragraph{Break: true})
			continue
		}
		out = append(out, Paragraph{Text: line})
	}
	return out
}
