package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostProcessEmptyInput(t *testing.T) {
	for _, kind := range []Kind{KindResume, KindCoverLetter} {
		_, err := PostProcess("", kind)
		assert.ErrorIs(t, err, ErrEmptyCompletion, "kind %s", kind)

		_, err = PostProcess("   \n\n  ", kind)
		assert.ErrorIs(t, err, ErrEmptyCompletion, "kind %s", kind)
	}
}

func TestPostProcessOnlyPreamble(t *testing.T) {
	_, err := PostProcess("Here is a professional resume for you:", KindResume)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestPostProcessUnknownKind(t *testing.T) {
	_, err := PostProcess("some text", Kind("memo"))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestPostProcessResume(t *testing.T) {
	raw := "Here is a professional resume for you:\n\nEXPERIENCE\nSenior Engineer\n2020-Present\n- Built things"

	doc, err := PostProcess(raw, KindResume)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 4)

	assert.Equal(t, ClassifiedLine{Role: RoleSectionHeader, Text: "EXPERIENCE"}, doc.Lines[0])
	assert.Equal(t, ClassifiedLine{Role: RoleBody, Text: "Senior Engineer"}, doc.Lines[1])
	assert.Equal(t, ClassifiedLine{Role: RoleDateRange, Text: "2020-Present"}, doc.Lines[2])
	assert.Equal(t, ClassifiedLine{Role: RoleBullet, Text: "- Built things"}, doc.Lines[3])
}

func TestPostProcessCoverLetter(t *testing.T) {
	raw := "Dear Hiring Manager,\n\nI am excited to apply for this role.\n\nSincerely,\nJ. Doe"

	doc, err := PostProcess(raw, KindCoverLetter)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 6)

	assert.Equal(t, "Dear Hiring Manager,", doc.Paragraphs[0].Text)
	assert.True(t, doc.Paragraphs[1].Break)
	assert.Equal(t, "I am excited to apply for this role.", doc.Paragraphs[2].Text)
	assert.True(t, doc.Paragraphs[3].Break)
	assert.Equal(t, "Sincerely,", doc.Paragraphs[4].Text)
	assert.Equal(t, "J. Doe", doc.Paragraphs[5].Text)
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"Here's a professional cover letter:\n\nDear Hiring Manager,\n\nI am excited.",
		"I've prepared a resume tailored to the posting:\n\nEXPERIENCE\n- Shipped it",
		"Based on your information, here is the resume:\n\nSUMMARY\nEngineer",
	}
	for _, raw := range inputs {
		once := Strip(raw)
		assert.NotEmpty(t, once)
		assert.Equal(t, once, Strip(once), "second pass must be a no-op")
	}
}

func TestStripTable(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"here is", "Here is a professional resume for the role:\nSUMMARY", "SUMMARY"},
		{"here's", "Here's a cover letter:\nDear Team,", "Dear Team,"},
		{"created", "I've created a professional resume below.\nSKILLS", "SKILLS"},
		{"generated", "I have no intro", "I have no intro"},
		{"below is", "Below is a resume:\nEDUCATION", "EDUCATION"},
		{"here is your", "Here is your cover letter.\nDear Sir,", "Dear Sir,"},
		{"this is", "This is a professional cover letter:\nDear Madam,", "Dear Madam,"},
		{"the following", "The following is a resume draft:\nCONTACT", "CONTACT"},
		{"crafted", "I've crafted a cover letter just for you:\nHello,", "Hello,"},
		{"please find", "Please find below a professional resume:\nSKILLS", "SKILLS"},
		{"attached", "Attached is a resume for your records.\nSUMMARY", "SUMMARY"},
		{"dear hm here is", "Dear Hiring Manager,\nhere is the letter:\nI write to apply.", "I write to apply."},
		{"based on", "Based on the details, here is the resume:\nSKILLS", "SKILLS"},
		{"using", "Using the information provided, here is a draft:\nSKILLS", "SKILLS"},
		{"transition only", "For your consideration: I bring ten years of experience.", "I bring ten years of experience."},
		{"tailored", "Tailored to the position, my background fits well.", "my background fits well."},
		{"customized", "Customized for this role: see below.", "see below."},
		{"formatted", "Formatted for your review, the resume follows.", "the resume follows."},
		{"stacked", "Here is a professional resume:\nFor your consideration:\nSUMMARY", "SUMMARY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Strip(tc.raw))
		})
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		role LineRole
		text string
	}{
		{"EXPERIENCE", RoleSectionHeader, "EXPERIENCE"},
		{"SKILLS:", RoleSectionHeader, "SKILLS"},
		{"Technical Skills:", RoleSectionHeader, "Technical Skills"},
		{"work experience", RoleSectionHeader, "work experience"},
		{"PROFESSIONAL SUMMARY", RoleSectionHeader, "PROFESSIONAL SUMMARY"},
		{"• Led a team of five", RoleBullet, "• Led a team of five"},
		{"- Built things", RoleBullet, "- Built things"},
		{"2020-Present", RoleDateRange, "2020-Present"},
		{"2018-2022", RoleDateRange, "2018-2022"},
		{"Jan 2021 - Mar 2023", RoleDateRange, "Jan 2021 - Mar 2023"},
		{"December 2019", RoleDateRange, "December 2019"},
		{"Senior Engineer", RoleBody, "Senior Engineer"},
		{"Led cross-functional initiatives", RoleBody, "Led cross-functional initiatives"},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got := ClassifyLine(tc.line)
			assert.Equal(t, tc.role, got.Role)
			assert.Equal(t, tc.text, got.Text)
		})
	}
}

func TestClassifyLinePrecedence(t *testing.T) {
	// All-caps line ending in a colon is a header via the first rule, with the
	// colon stripped exactly once.
	got := ClassifyLine("SKILLS:")
	assert.Equal(t, RoleSectionHeader, got.Role)
	assert.Equal(t, "SKILLS", got.Text)

	// A header-looking bullet keeps the header role.
	got = ClassifyLine("CERTIFICATIONS •")
	assert.Equal(t, RoleSectionHeader, got.Role)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("resume")
	require.NoError(t, err)
	assert.Equal(t, KindResume, kind)

	kind, err = ParseKind("cover-letter")
	require.NoError(t, err)
	assert.Equal(t, KindCoverLetter, kind)

	_, err = ParseKind("memo")
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = ParseKind("")
	assert.ErrorIs(t, err, ErrInvalidKind)
}
