package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const opportunityColumns = `id, title, company, contact_name, value, stage, close_date,
	win_probability, urgent, ai_analysis, description, lead_id, account_id, contact_id,
	created_at, updated_at`

type OpportunityRepository struct {
	DB *sql.DB
}

func NewOpportunityRepository(db *sql.DB) *OpportunityRepository {
	return &OpportunityRepository{DB: db}
}

func (r *OpportunityRepository) Create(ctx context.Context, opp *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (id, title, company, contact_name, value, stage,
			close_date, win_probability, urgent, ai_analysis, description,
			lead_id, account_id, contact_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.DB.ExecContext(ctx, query,
		opp.ID,
		opp.Title,
		opp.Company,
		opp.ContactName,
		int64(opp.Value),
		string(opp.Stage),
		fmtTime(opp.CloseDate),
		opp.WinProbability,
		opp.Urgent,
		opp.AIAnalysis,
		opp.Description,
		nullString(opp.LeadID),
		nullString(opp.AccountID),
		nullString(opp.ContactID),
		fmtTime(opp.CreatedAt),
		fmtTime(opp.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert opportunity: %w", err)
	}

	return nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = ?`, id)

	opp, err := scanOpportunity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find opportunity: %w", err)
	}

	return opp, nil
}

func (r *OpportunityRepository) List(ctx context.Context) ([]entity.Opportunity, error) {
	return r.list(ctx, `SELECT `+opportunityColumns+` FROM opportunities ORDER BY rowid`)
}

func (r *OpportunityRepository) ListByAccount(ctx context.Context, accountID string) ([]entity.Opportunity, error) {
	return r.list(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE account_id = ? ORDER BY rowid`, accountID)
}

func (r *OpportunityRepository) list(ctx context.Context, query string, args ...any) ([]entity.Opportunity, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()

	opps := []entity.Opportunity{}
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("list opportunities: %w", err)
		}
		opps = append(opps, *opp)
	}

	return opps, rows.Err()
}

func (r *OpportunityRepository) Update(ctx context.Context, id string, patch entity.OpportunityPatch) (*entity.Opportunity, error) {
	opp, err := r.FindByID(ctx, id)
	if err != nil || opp == nil {
		return nil, err
	}

	opp.Apply(patch)

	query := `
		UPDATE opportunities SET title = ?, company = ?, contact_name = ?, value = ?,
			stage = ?, close_date = ?, win_probability = ?, urgent = ?, ai_analysis = ?,
			description = ?, lead_id = ?, account_id = ?, contact_id = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.DB.ExecContext(ctx, query,
		opp.Title,
		opp.Company,
		opp.ContactName,
		int64(opp.Value),
		string(opp.Stage),
		fmtTime(opp.CloseDate),
		opp.WinProbability,
		opp.Urgent,
		opp.AIAnalysis,
		opp.Description,
		nullString(opp.LeadID),
		nullString(opp.AccountID),
		nullString(opp.ContactID),
		fmtTime(opp.UpdatedAt),
		opp.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update opportunity: %w", err)
	}

	return opp, nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM opportunities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	return nil
}

func scanOpportunity(row rowScanner) (*entity.Opportunity, error) {
	var (
		opp                            entity.Opportunity
		value                          int64
		stage                          string
		closeDate                      string
		leadID, accountID, contactID   sql.NullString
		createdAt, updatedAt           string
	)

	err := row.Scan(
		&opp.ID,
		&opp.Title,
		&opp.Company,
		&opp.ContactName,
		&value,
		&stage,
		&closeDate,
		&opp.WinProbability,
		&opp.Urgent,
		&opp.AIAnalysis,
		&opp.Description,
		&leadID,
		&accountID,
		&contactID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	opp.Value = entity.DealValue(value)
	opp.Stage = entity.Stage(stage)
	opp.LeadID = leadID.String
	opp.AccountID = accountID.String
	opp.ContactID = contactID.String

	if opp.CloseDate, err = parseTime(closeDate); err != nil {
		return nil, err
	}
	if opp.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if opp.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &opp, nil
}
