package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerdraft-backend/internal/document"
	"careerdraft-backend/internal/llm"
	"careerdraft-backend/internal/profile"
	"careerdraft-backend/internal/shared/telemetry"
	"careerdraft-backend/internal/usage"
)

// ProfileSource loads the optional applicant profile for prompt building.
type ProfileSource interface {
	GetByUser(ctx context.Context, userID string) (profile.Profile, error)
}

// UsageRecorder records a completed generation for usage reporting.
type UsageRecorder interface {
	Record(ctx context.Context, userID string, kind document.Kind, contentLength int) (usage.Usage, error)
}

// Result is a completed generation: the cleaned text plus its
// rendering-ready form.
type Result struct {
	Content  string
	Document document.Document
}

// Service orchestrates a generation: prompt building, the provider call,
// post-processing and best-effort usage recording.
type Service struct {
	LLM      llm.Client
	Profiles ProfileSource
	Usage    UsageRecorder
}

// NewService constructs a Service.
func NewService(client llm.Client, profiles ProfileSource, usageRecorder UsageRecorder) *Service {
	return &Service{LLM: client, Profiles: profiles, Usage: usageRecorder}
}

// Generate produces one document of the given kind. The provider is called
// exactly once; there is no retry. A usage write failure never fails the
// generation.
func (s *Service) Generate(ctx context.Context, userID string, kind document.Kind, jobDescription string) (Result, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return Result{}, fmt.Errorf("%w: job description is required", ErrInvalidRequest)
	}
	if kind != document.KindResume && kind != document.KindCoverLetter {
		return Result{}, fmt.Errorf("%w: %q", document.ErrInvalidKind, kind)
	}

	prof := s.loadProfile(ctx, userID)
	messages := BuildMessages(kind, jobDescription, prof)

	raw, err := s.LLM.Complete(ctx, messages)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	doc, err := document.PostProcess(raw, kind)
	if err != nil {
		return Result{}, err
	}
	content := document.Strip(raw)

	if s.Usage != nil {
		if _, err := s.Usage.Record(ctx, userID, kind, len(content)); err != nil {
			telemetry.Warn("generation.usage_record_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	return Result{Content: content, Document: doc}, nil
}

// loadProfile fetches the applicant's profile if one exists. Any load
// failure degrades to the persona-only prompt rather than failing the
// generation.
func (s *Service) loadProfile(ctx context.Context, userID string) *profile.Profile {
	if s.Profiles == nil {
		return nil
	}
	prof, err := s.Profiles.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			telemetry.Warn("generation.profile_load_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil
	}
	return &prof
}
