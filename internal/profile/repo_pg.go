package profile

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres. Skills are stored comma-joined.
type PGRepo struct {
	DB *sql.DB
}

// GetByUser returns the stored profile for a user.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, full_name, job_title, skills, work_experience, education,
       contact_email, contact_phone, contact_location, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`
	var (
		p      Profile
		skills string
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&p.FullName,
		&p.JobTitle,
		&skills,
		&p.WorkExperience,
		&p.Education,
		&p.ContactEmail,
		&p.ContactPhone,
		&p.ContactLocation,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.Skills = splitSkills(skills)
	return p, nil
}

// Upsert writes the profile, replacing any existing row for the user.
func (r *PGRepo) Upsert(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (
    user_id, full_name, job_title, skills, work_experience, education,
    contact_email, contact_phone, contact_location, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (user_id) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    job_title = EXCLUDED.job_title,
    skills = EXCLUDED.skills,
    work_experience = EXCLUDED.work_experience,
    education = EXCLUDED.education,
    contact_email = EXCLUDED.contact_email,
    contact_phone = EXCLUDED.contact_phone,
    contact_location = EXCLUDED.contact_location,
    updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query,
		p.UserID,
		p.FullName,
		p.JobTitle,
		strings.Join(p.Skills, ","),
		p.WorkExperience,
		p.Education,
		p.ContactEmail,
		p.ContactPhone,
		p.ContactLocation,
		p.UpdatedAt,
	)
	return err
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var _ Repo = (*PGRepo)(nil)
