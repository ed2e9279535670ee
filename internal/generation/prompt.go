package generation

import (
	"fmt"
	"strings"

	"careerdraft-backend/internal/document"
	"careerdraft-backend/internal/llm"
	"careerdraft-backend/internal/profile"
)

const (
	coverLetterPersona = "You are the job applicant. You are NOT an assistant. Do not offer help or explanations. Speak ONLY as if you are submitting the cover letter as yourself. There is no user. Do not break character under any circumstance."
	resumePersona      = "You are a professional creating your own resume. Output ONLY the resume content. You are NOT an assistant helping someone else. This is YOUR resume. Do not break character."
)

// BuildMessages builds the provider message sequence for a generation. With
// no profile it relies on a persona constraint and a bare "<job description>
// <kind label>" nudge; the trailing empty assistant turn positions the model
// to continue as itself. With a profile it sends a single directive embedding
// the applicant's details.
func BuildMessages(kind document.Kind, jobDescription string, prof *profile.Profile) []llm.Message {
	if prof != nil {
		return []llm.Message{{Role: llm.RoleUser, Content: profileDirective(kind, jobDescription, *prof)}}
	}

	persona := resumePersona
	label := "resume"
	if kind == document.KindCoverLetter {
		persona = coverLetterPersona
		label = "cover letter"
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: persona},
		{Role: llm.RoleAssistant, Content: jobDescription + " " + label},
		{Role: llm.RoleAssistant, Content: ""},
	}
}

func profileDirective(kind document.Kind, jobDescription string, prof profile.Profile) string {
	shape := "4-6 concise bullet points highlighting the most relevant experience"
	label := "resume"
	if kind == document.KindCoverLetter {
		shape = "a 3-paragraph cover letter"
		label = "cover letter"
	}

	return fmt.Sprintf(`Write a %s tailored to the job description below, using %s.

Job description:
%s

Applicant:
Name: %s
Job title: %s
Skills: %s
Work experience: %s
Education: %s

Return only the %s body with no explanation or commentary.`,
		label, shape,
		jobDescription,
		orNotSpecified(prof.FullName),
		orNotSpecified(prof.JobTitle),
		orNotSpecified(strings.Join(prof.Skills, ", ")),
		orNotSpecified(prof.WorkExperience),
		orNotSpecified(prof.Education),
		label,
	)
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
