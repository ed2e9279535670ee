package main

// Try prompt construction, and optionally a live completion, from the shell:
//   go run ./cmd/prompttest -type resume -jd jd.txt
//   go run ./cmd/prompttest -type cover-letter -jd jd.txt -call

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"careerdraft-backend/internal/document"
	"careerdraft-backend/internal/generation"
	"careerdraft-backend/internal/llm/groq"
	"careerdraft-backend/internal/profile"
	"careerdraft-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	kindFlag := flag.String("type", "resume", "Document type (resume or cover-letter)")
	jdPath := flag.String("jd", "", "Path to a job description file, or the text itself")
	name := flag.String("name", "", "Applicant name (enables the profile directive)")
	title := flag.String("title", "", "Applicant job title")
	skills := flag.String("skills", "", "Comma-separated skills")
	call := flag.Bool("call", false, "Send the prompt to the completion provider")
	flag.Parse()

	kind, err := document.ParseKind(*kindFlag)
	if err != nil {
		exitErr(err.Error())
	}

	jd := readJD(*jdPath)
	if strings.TrimSpace(jd) == "" {
		exitErr("job description is required (-jd)")
	}

	var prof *profile.Profile
	if *name != "" {
		prof = &profile.Profile{
			FullName: *name,
			JobTitle: *title,
			Skills:   splitSkills(*skills),
		}
	}

	messages := generation.BuildMessages(kind, jd, prof)
	printJSON("messages", messages)

	if !*call {
		return
	}

	client, err := groq.NewClient(groq.Config{
		APIKey:      cfg.GroqAPIKey,
		BaseURL:     cfg.GroqBaseURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		TopP:        cfg.LLMTopP,
		Timeout:     cfg.LLMTimeout,
	})
	if err != nil {
		exitErr(fmt.Sprintf("build client: %v", err))
	}

	raw, err := client.Complete(context.Background(), messages)
	if err != nil {
		exitErr(fmt.Sprintf("complete: %v", err))
	}
	fmt.Println("--- raw completion ---")
	fmt.Println(raw)

	doc, err := document.PostProcess(raw, kind)
	if err != nil {
		exitErr(fmt.Sprintf("post-process: %v", err))
	}
	printJSON("document", doc)
}

func readJD(arg string) string {
	if arg == "" {
		return ""
	}
	if data, err := os.ReadFile(arg); err == nil {
		return string(data)
	}
	return arg
}

func splitSkills(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func printJSON(label string, v any) {
	fmt.Printf("--- %s ---\n", label)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("marshal %s: %v", label, err))
	}
	fmt.Println(string(data))
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
