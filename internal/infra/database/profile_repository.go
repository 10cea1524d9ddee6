package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const profileColumns = `id, name, email, company, title, phone, bio, location,
	timezone, quota_target, dashboard_widgets, updated_at`

// ProfileRepository manages the singleton user profile row. The row is
// inserted by the seed and only ever merged into afterwards.
type ProfileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Insert(ctx context.Context, profile *entity.UserProfile) error {
	widgets, err := json.Marshal(profile.DashboardWidgets)
	if err != nil {
		return fmt.Errorf("encode widgets: %w", err)
	}

	query := `
		INSERT INTO user_profile (id, name, email, company, title, phone, bio,
			location, timezone, quota_target, dashboard_widgets, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		profile.Email,
		profile.Company,
		profile.Title,
		profile.Phone,
		profile.Bio,
		profile.Location,
		profile.Timezone,
		profile.QuotaTarget,
		string(widgets),
		fmtTime(profile.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Get(ctx context.Context) (*entity.UserProfile, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profile LIMIT 1`)

	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, patch entity.ProfilePatch) (*entity.UserProfile, error) {
	profile, err := r.Get(ctx)
	if err != nil || profile == nil {
		return nil, err
	}

	profile.Apply(patch)
	if err := r.save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateWidgets replaces the enabled-widget list wholesale; toggling a single
// widget is the caller's concern.
func (r *ProfileRepository) UpdateWidgets(ctx context.Context, widgets []string) (*entity.UserProfile, error) {
	profile, err := r.Get(ctx)
	if err != nil || profile == nil {
		return nil, err
	}

	profile.DashboardWidgets = widgets
	profile.Apply(entity.ProfilePatch{}) // refreshes updated_at

	if err := r.save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *ProfileRepository) save(ctx context.Context, profile *entity.UserProfile) error {
	widgets, err := json.Marshal(profile.DashboardWidgets)
	if err != nil {
		return fmt.Errorf("encode widgets: %w", err)
	}

	query := `
		UPDATE user_profile SET name = ?, email = ?, company = ?, title = ?, phone = ?,
			bio = ?, location = ?, timezone = ?, quota_target = ?,
			dashboard_widgets = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.DB.ExecContext(ctx, query,
		profile.Name,
		profile.Email,
		profile.Company,
		profile.Title,
		profile.Phone,
		profile.Bio,
		profile.Location,
		profile.Timezone,
		profile.QuotaTarget,
		string(widgets),
		fmtTime(profile.UpdatedAt),
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}

func scanProfile(row rowScanner) (*entity.UserProfile, error) {
	var (
		profile   entity.UserProfile
		widgets   string
		updatedAt string
	)

	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.Company,
		&profile.Title,
		&profile.Phone,
		&profile.Bio,
		&profile.Location,
		&profile.Timezone,
		&profile.QuotaTarget,
		&widgets,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(widgets), &profile.DashboardWidgets); err != nil {
		return nil, fmt.Errorf("decode widgets: %w", err)
	}
	if profile.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &profile, nil
}
