// Package render turns classified documents into printable HTML and PDF.
package render

import (
	"html/template"
	"strings"

	"careerdraft-backend/internal/document"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; font-size: 11pt; color: #1a1a1a; margin: 48px 56px; line-height: 1.45; }
  h2 { font-size: 12pt; letter-spacing: 1px; border-bottom: 1px solid #999; padding-bottom: 2px; margin: 18px 0 6px; text-transform: uppercase; }
  .date-range { font-style: italic; color: #444; margin: 2px 0; }
  ul { margin: 4px 0 4px 18px; padding: 0; }
  li { margin: 2px 0; }
  p { margin: 4px 0; }
  .paragraph-break { height: 10px; }
</style>
</head>
<body>
{{range .Blocks}}{{.}}
{{end}}</body>
</html>
`))

type pageData struct {
	Title  string
	Blocks []template.HTML
}

// HTML lays out a classified document as a printable page. Consecutive
// bullets collapse into one list.
func HTML(doc document.Document, title string) (string, error) {
	var blocks []template.HTML
	if doc.Kind == document.KindCoverLetter {
		blocks = letterBlocks(doc.Paragraphs)
	} else {
		blocks = resumeBlocks(doc.Lines)
	}

	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, pageData{Title: title, Blocks: blocks}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func resumeBlocks(lines []document.ClassifiedLine) []template.HTML {
	var (
		blocks  []template.HTML
		bullets []string
	)
	flush := func() {
		if len(bullets) == 0 {
			return
		}
		var b strings.Builder
		b.WriteString("<ul>")
		for _, text := range bullets {
			b.WriteString("<li>")
			b.WriteString(template.HTMLEscapeString(text))
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		blocks = append(blocks, template.HTML(b.String()))
		bullets = nil
	}

	for _, line := range lines {
		if line.Role == document.RoleBullet {
			bullets = append(bullets, bulletText(line.Text))
			continue
		}
		flush()
		escaped := template.HTMLEscapeString(line.Text)
		switch line.Role {
		case document.RoleSectionHeader:
			blocks = append(blocks, template.HTML("<h2>"+escaped+"</h2>"))
		case document.RoleDateRange:
			blocks = append(blocks, template.HTML(`<p class="date-range">`+escaped+"</p>"))
		default:
			blocks = append(blocks, template.HTML("<p>"+escaped+"</p>"))
		}
	}
	flush()
	return blocks
}

func letterBlocks(paragraphs []document.Paragraph) []template.HTML {
	var blocks []template.HTML
	for _, p := range paragraphs {
		if p.Break {
			blocks = append(blocks, template.HTML(`<div class="paragraph-break"></div>`))
			continue
		}
		blocks = append(blocks, template.HTML("<p>"+template.HTMLEscapeString(p.Text)+"</p>"))
	}
	return blocks
}

// bulletText removes the leading bullet marker so the list styling supplies
// its own.
func bulletText(text string) string {
	text = strings.TrimPrefix(text, "- ")
	text = strings.TrimPrefix(text, "•")
	return strings.TrimSpace(text)
}
