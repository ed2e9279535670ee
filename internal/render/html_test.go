package render

import (
	"strings"
	"testing"

	"careerdraft-backend/internal/document"
)

func TestHTMLResumeLayout(t *testing.T) {
	doc := document.Document{
		Kind: document.KindResume,
		Lines: []document.ClassifiedLine{
			{Role: document.RoleSectionHeader, Text: "EXPERIENCE"},
			{Role: document.RoleBody, Text: "Senior Engineer at Acme"},
			{Role: document.RoleDateRange, Text: "2020-Present"},
			{Role: document.RoleBullet, Text: "- Built things"},
			{Role: document.RoleBullet, Text: "• Led a team"},
		},
	}

	html, err := HTML(doc, "Jane Doe")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<h2>EXPERIENCE</h2>") {
		t.Fatalf("missing section header:\n%s", html)
	}
	if !strings.Contains(html, `<p class="date-range">2020-Present</p>`) {
		t.Fatalf("missing date range:\n%s", html)
	}
	// Consecutive bullets share one list, markers stripped.
	if !strings.Contains(html, "<ul><li>Built things</li><li>Led a team</li></ul>") {
		t.Fatalf("bullets not collapsed:\n%s", html)
	}
}

func TestHTMLCoverLetterBreaks(t *testing.T) {
	doc := document.Document{
		Kind: document.KindCoverLetter,
		Paragraphs: []document.Paragraph{
			{Text: "Dear Hiring Manager,"},
			{Break: true},
			{Text: "I am excited to apply."},
		},
	}

	html, err := HTML(doc, "Cover Letter")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<p>Dear Hiring Manager,</p>") {
		t.Fatalf("missing paragraph:\n%s", html)
	}
	if !strings.Contains(html, `<div class="paragraph-break"></div>`) {
		t.Fatalf("missing break marker:\n%s", html)
	}
}

func TestHTMLEscapesContent(t *testing.T) {
	doc := document.Document{
		Kind:  document.KindResume,
		Lines: []document.ClassifiedLine{{Role: document.RoleBody, Text: `<script>alert("x")</script>`}},
	}

	html, err := HTML(doc, "t")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("content not escaped:\n%s", html)
	}
}
