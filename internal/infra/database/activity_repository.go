package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const activityColumns = `id, type, title, description, contact_name, company, status,
	duration, outcome, notes, scheduled_date, completed_date, lead_id, opportunity_id,
	account_id, contact_id, created_at`

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, type, title, description, contact_name, company,
			status, duration, outcome, notes, scheduled_date, completed_date,
			lead_id, opportunity_id, account_id, contact_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.DB.ExecContext(ctx, query,
		activity.ID,
		string(activity.Type),
		activity.Title,
		activity.Description,
		activity.ContactName,
		activity.Company,
		string(activity.Status),
		activity.Duration,
		string(activity.Outcome),
		activity.Notes,
		fmtNullTime(activity.ScheduledDate),
		fmtNullTime(activity.CompletedDate),
		nullString(activity.LeadID),
		nullString(activity.OpportunityID),
		nullString(activity.AccountID),
		nullString(activity.ContactID),
		fmtTime(activity.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*entity.Activity, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)

	activity, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}

	return activity, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY rowid`)
}

// ListRecent returns the n most recently logged activities, newest first.
func (r *ActivityRepository) ListRecent(ctx context.Context, n int) ([]entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY created_at DESC LIMIT ?`, n)
}

func (r *ActivityRepository) ListByLead(ctx context.Context, leadID string) ([]entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE lead_id = ? ORDER BY rowid`, leadID)
}

func (r *ActivityRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE opportunity_id = ? ORDER BY rowid`, opportunityID)
}

func (r *ActivityRepository) ListByAccount(ctx context.Context, accountID string) ([]entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE account_id = ? ORDER BY rowid`, accountID)
}

func (r *ActivityRepository) ListByContact(ctx context.Context, contactID string) ([]entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE contact_id = ? ORDER BY rowid`, contactID)
}

func (r *ActivityRepository) list(ctx context.Context, query string, args ...any) ([]entity.Activity, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := []entity.Activity{}
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}
		activities = append(activities, *activity)
	}

	return activities, rows.Err()
}

// Update merges the patch. Activities deliberately have no updated_at to
// refresh; they are history entries.
func (r *ActivityRepository) Update(ctx context.Context, id string, patch entity.ActivityPatch) (*entity.Activity, error) {
	activity, err := r.FindByID(ctx, id)
	if err != nil || activity == nil {
		return nil, err
	}

	activity.Apply(patch)

	query := `
		UPDATE activities SET type = ?, title = ?, description = ?, contact_name = ?,
			company = ?, status = ?, duration = ?, outcome = ?, notes = ?,
			scheduled_date = ?, completed_date = ?, lead_id = ?, opportunity_id = ?,
			account_id = ?, contact_id = ?
		WHERE id = ?
	`

	_, err = r.DB.ExecContext(ctx, query,
		string(activity.Type),
		activity.Title,
		activity.Description,
		activity.ContactName,
		activity.Company,
		string(activity.Status),
		activity.Duration,
		string(activity.Outcome),
		activity.Notes,
		fmtNullTime(activity.ScheduledDate),
		fmtNullTime(activity.CompletedDate),
		nullString(activity.LeadID),
		nullString(activity.OpportunityID),
		nullString(activity.AccountID),
		nullString(activity.ContactID),
		activity.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	return activity, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func scanActivity(row rowScanner) (*entity.Activity, error) {
	var (
		activity                                 entity.Activity
		activityType, status, outcome            string
		scheduledDate, completedDate             *string
		leadID, oppID, accountID, contactID      sql.NullString
		createdAt                                string
	)

	err := row.Scan(
		&activity.ID,
		&activityType,
		&activity.Title,
		&activity.Description,
		&activity.ContactName,
		&activity.Company,
		&status,
		&activity.Duration,
		&outcome,
		&activity.Notes,
		&scheduledDate,
		&completedDate,
		&leadID,
		&oppID,
		&accountID,
		&contactID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	activity.Type = entity.ActivityType(activityType)
	activity.Status = entity.ActivityStatus(status)
	activity.Outcome = entity.ActivityOutcome(outcome)
	activity.LeadID = leadID.String
	activity.OpportunityID = oppID.String
	activity.AccountID = accountID.String
	activity.ContactID = contactID.String

	if activity.ScheduledDate, err = parseNullTime(scheduledDate); err != nil {
		return nil, err
	}
	if activity.CompletedDate, err = parseNullTime(completedDate); err != nil {
		return nil, err
	}
	if activity.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	return &activity, nil
}
