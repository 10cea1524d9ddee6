package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const contactColumns = `id, name, email, phone, title, department, account_id,
	is_primary, linkedin_url, notes, created_at, updated_at`

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, title, department, account_id,
			is_primary, linkedin_url, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.DB.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Title,
		contact.Department,
		contact.AccountID,
		contact.IsPrimary,
		contact.LinkedInURL,
		contact.Notes,
		fmtTime(contact.CreatedAt),
		fmtTime(contact.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)

	contact, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.Contact, error) {
	return r.list(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY rowid`)
}

// ListByAccount returns every contact belonging to the account, in insertion
// order.
func (r *ContactRepository) ListByAccount(ctx context.Context, accountID string) ([]entity.Contact, error) {
	return r.list(ctx, `SELECT `+contactColumns+` FROM contacts WHERE account_id = ? ORDER BY rowid`, accountID)
}

func (r *ContactRepository) list(ctx context.Context, query string, args ...any) ([]entity.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []entity.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		contacts = append(contacts, *contact)
	}

	return contacts, rows.Err()
}

func (r *ContactRepository) Update(ctx context.Context, id string, patch entity.ContactPatch) (*entity.Contact, error) {
	contact, err := r.FindByID(ctx, id)
	if err != nil || contact == nil {
		return nil, err
	}

	contact.Apply(patch)

	query := `
		UPDATE contacts SET name = ?, email = ?, phone = ?, title = ?, department = ?,
			account_id = ?, is_primary = ?, linkedin_url = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.DB.ExecContext(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Title,
		contact.Department,
		contact.AccountID,
		contact.IsPrimary,
		contact.LinkedInURL,
		contact.Notes,
		fmtTime(contact.UpdatedAt),
		contact.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func scanContact(row rowScanner) (*entity.Contact, error) {
	var (
		contact              entity.Contact
		createdAt, updatedAt string
	)

	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Title,
		&contact.Department,
		&contact.AccountID,
		&contact.IsPrimary,
		&contact.LinkedInURL,
		&contact.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contact.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if contact.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &contact, nil
}
