package document

// LineRole is the structural role a resume line plays during layout.
type LineRole string

const (
	// RoleSectionHeader marks a section title such as EXPERIENCE or SKILLS.
	RoleSectionHeader LineRole = "sectionHeader"
	// RoleBullet marks a bulleted list item.
	RoleBullet LineRole = "bullet"
	// RoleDateRange marks a line that opens with a year or month.
	RoleDateRange LineRole = "dateRange"
	// RoleBody marks ordinary body text.
	RoleBody LineRole = "body"
)

// ClassifiedLine is a resume line tagged with its structural role.
type ClassifiedLine struct {
	Role LineRole `json:"role"`
	Text string   `json:"text"`
}

// Paragraph is a cover-letter layout unit. A unit with Break set carries no
// text and tells renderers to insert vertical spacing.
type Paragraph struct {
	Text  string `json:"text,omitempty"`
	Break bool   `json:"break,omitempty"`
}

// Document is the rendering-ready form of a completion. Resumes carry
// classified lines; cover letters carry paragraph units. Exactly one of the
// two slices is populated.
type Document struct {
	Kind       Kind             `json:"kind"`
	Lines      []ClassifiedLine `json:"lines,omitempty"`
	Paragraphs []Paragraph      `json:"paragraphs,omitempty"`
}
