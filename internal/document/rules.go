package document

import (
	"regexp"
	"strings"
)

// introPatterns match the conversational framing models prepend despite the
// persona instructions in the prompt. Order matters: rules are applied
// sequentially against the start of the text and each consumes through the
// end of its line, so trailing fragments like "for you:" go with the intro.
var introPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here is a (professional )?resume[^\n]*`),
	regexp.MustCompile(`(?i)^here is a (professional )?cover letter[^\n]*`),
	regexp.MustCompile(`(?i)^here'?s a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^i'?ve (created|prepared|generated) a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^below is a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^here is your (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^this is a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^the following is a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^i'?ve crafted a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^please find (below )?a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^attached is a (professional )?(resume|cover letter)[^\n]*`),
	regexp.MustCompile(`(?i)^dear hiring manager,?\s*\n\s*here is[^\n]*`),
	regexp.MustCompile(`(?i)^based on (your|the) (information|details|requirements),? here is[^\n]*`),
	regexp.MustCompile(`(?i)^using the (information|details) provided,? here is[^\n]*`),
}

// transitionPatterns remove short lead-in clauses left at the start of the
// text once the intro is gone.
var transitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^for (your|the) consideration[,:]?\s*`),
	regexp.MustCompile(`(?i)^tailored to the position[,:]?\s*`),
	regexp.MustCompile(`(?i)^customized for this role[,:]?\s*`),
	regexp.MustCompile(`(?i)^formatted for your review[,:]?\s*`),
}

var leadingBlankLines = regexp.MustCompile(`^\s*\n+`)

// Strip removes model meta-commentary from the start of a completion. It is
// stable under repetition: stripping already-clean text is a no-op.
func Strip(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, re := range introPatterns {
		cleaned = strings.TrimSpace(re.ReplaceAllString(cleaned, ""))
	}
	for _, re := range transitionPatterns {
		cleaned = strings.TrimSpace(re.ReplaceAllString(cleaned, ""))
	}
	return strings.TrimSpace(leadingBlankLines.ReplaceAllString(cleaned, ""))
}
