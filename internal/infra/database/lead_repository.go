package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const leadColumns = `id, name, email, phone, company, industry, location, score,
	status, ai_insight, notes, source, account_id, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, company, industry, location,
			score, status, ai_insight, notes, source, account_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.Industry,
		lead.Location,
		lead.Score,
		string(lead.Status),
		lead.AIInsight,
		lead.Notes,
		lead.Source,
		nullString(lead.AccountID),
		fmtTime(lead.CreatedAt),
		fmtTime(lead.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	return nil
}

// FindByID returns (nil, nil) for an unknown id; absence is not an error.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead: %w", err)
	}

	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("list leads: %w", err)
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

// Update merges the patch into the stored lead and refreshes updated_at. A
// missing id is a silent no-op returning (nil, nil).
func (r *LeadRepository) Update(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error) {
	lead, err := r.FindByID(ctx, id)
	if err != nil || lead == nil {
		return nil, err
	}

	lead.Apply(patch)

	query := `
		UPDATE leads SET name = ?, email = ?, phone = ?, company = ?, industry = ?,
			location = ?, score = ?, status = ?, ai_insight = ?, notes = ?, source = ?,
			account_id = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.Industry,
		lead.Location,
		lead.Score,
		string(lead.Status),
		lead.AIInsight,
		lead.Notes,
		lead.Source,
		nullString(lead.AccountID),
		fmtTime(lead.UpdatedAt),
		lead.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}

	return lead, nil
}

// Delete is idempotent. Activities referencing the lead go with it via the
// schema cascade.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead                 entity.Lead
		status               string
		accountID            sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.Industry,
		&lead.Location,
		&lead.Score,
		&status,
		&lead.AIInsight,
		&lead.Notes,
		&lead.Source,
		&accountID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Status = entity.LeadStatus(status)
	lead.AccountID = accountID.String

	if lead.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if lead.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &lead, nil
}
