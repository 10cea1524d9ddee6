package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const accountColumns = `id, name, industry, website, phone, address, city, state,
	country, employees, revenue, description, created_at, updated_at`

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, name, industry, website, phone, address, city,
			state, country, employees, revenue, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.DB.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Industry,
		account.Website,
		account.Phone,
		account.Address,
		account.City,
		account.State,
		account.Country,
		account.Employees,
		account.Revenue,
		account.Description,
		fmtTime(account.CreatedAt),
		fmtTime(account.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]entity.Account, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []entity.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, id string, patch entity.AccountPatch) (*entity.Account, error) {
	account, err := r.FindByID(ctx, id)
	if err != nil || account == nil {
		return nil, err
	}

	account.Apply(patch)

	query := `
		UPDATE accounts SET name = ?, industry = ?, website = ?, phone = ?,
			address = ?, city = ?, state = ?, country = ?, employees = ?,
			revenue = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.DB.ExecContext(ctx, query,
		account.Name,
		account.Industry,
		account.Website,
		account.Phone,
		account.Address,
		account.City,
		account.State,
		account.Country,
		account.Employees,
		account.Revenue,
		account.Description,
		fmtTime(account.UpdatedAt),
		account.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	return account, nil
}

// Delete is idempotent. The schema cascades take the account's contacts and
// activities along and null out lead/opportunity back-references.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var (
		account              entity.Account
		createdAt, updatedAt string
	)

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Industry,
		&account.Website,
		&account.Phone,
		&account.Address,
		&account.City,
		&account.State,
		&account.Country,
		&account.Employees,
		&account.Revenue,
		&account.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if account.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if account.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &account, nil
}
