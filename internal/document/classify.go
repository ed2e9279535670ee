package document

import (
	"regexp"
	"strings"
)

var (
	allCapsHeader = regexp.MustCompile(`^[A-Z\s]{3,}$`)
	sectionName   = regexp.MustCompile(`(?i)^(EXPERIENCE|EDUCATION|SKILLS|SUMMARY|OBJECTIVE|PROJECTS|CERTIFICATIONS|ACHIEVEMENTS|CONTACT|PROFESSIONAL SUMMARY|WORK EXPERIENCE|TECHNICAL SKILLS|CORE COMPETENCIES|QUALIFICATIONS)`)
	leadingYears  = regexp.MustCompile(`^\d{4}(-\d{4})?`)
	leadingMonth  = regexp.MustCompile(`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)
)

// ClassifyLine assigns a structural role to a single trimmed resume line.
// Rules are evaluated in precedence order; a line matching several takes the
// earliest role. Classification depends only on the line itself.
func ClassifyLine(line string) ClassifiedLine {
	switch {
	case allCapsHeader.MatchString(line) || sectionName.MatchString(line) || strings.HasSuffix(line, ":"):
		return ClassifiedLine{Role: RoleSectionHeader, Text: strings.TrimSpace(strings.TrimSuffix(line, ":"))}
	case strings.Contains(line, "•") || strings.HasPrefix(line, "- "):
		return ClassifiedLine{Role: RoleBullet, Text: line}
	case leadingYears.MatchString(line) || leadingMonth.MatchString(line):
		return ClassifiedLine{Role: RoleDateRange, Text: line}
	default:
		return ClassifiedLine{Role: RoleBody, Text: line}
	}
}
