package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

// SearchRepository runs the global substring search. Each entity type is
// matched against its own fixed field set; there is no ranking or paging,
// just a filter. The term must already be trimmed and lower-cased.
type SearchRepository struct {
	DB *sql.DB
}

func NewSearchRepository(db *sql.DB) *SearchRepository {
	return &SearchRepository{DB: db}
}

func (r *SearchRepository) GlobalSearch(ctx context.Context, term string) (entity.SearchResult, error) {
	result := entity.EmptySearchResult()

	leads, err := r.searchLeads(ctx, term)
	if err != nil {
		return result, err
	}
	result.Leads = leads

	opps, err := r.searchOpportunities(ctx, term)
	if err != nil {
		return result, err
	}
	result.Opportunities = opps

	accounts, err := r.searchAccounts(ctx, term)
	if err != nil {
		return result, err
	}
	result.Accounts = accounts

	contacts, err := r.searchContacts(ctx, term)
	if err != nil {
		return result, err
	}
	result.Contacts = contacts

	return result, nil
}

func (r *SearchRepository) searchLeads(ctx context.Context, term string) ([]entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + ` FROM leads
		WHERE instr(lower(name), ?) > 0
		   OR instr(lower(company), ?) > 0
		   OR instr(lower(email), ?) > 0
		   OR instr(lower(industry), ?) > 0
		ORDER BY rowid
	`

	rows, err := r.DB.QueryContext(ctx, query, term, term, term, term)
	if err != nil {
		return nil, fmt.Errorf("search leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("search leads: %w", err)
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

func (r *SearchRepository) searchOpportunities(ctx context.Context, term string) ([]entity.Opportunity, error) {
	query := `
		SELECT ` + opportunityColumns + ` FROM opportunities
		WHERE instr(lower(title), ?) > 0
		   OR instr(lower(company), ?) > 0
		   OR instr(lower(contact_name), ?) > 0
		ORDER BY rowid
	`

	return scanOpportunityRows(r.DB.QueryContext(ctx, query, term, term, term))
}

func (r *SearchRepository) searchAccounts(ctx context.Context, term string) ([]entity.Account, error) {
	query := `
		SELECT ` + accountColumns + ` FROM accounts
		WHERE instr(lower(name), ?) > 0
		   OR instr(lower(industry), ?) > 0
		ORDER BY rowid
	`

	rows, err := r.DB.QueryContext(ctx, query, term, term)
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}
	defer rows.Close()

	accounts := []entity.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("search accounts: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

func (r *SearchRepository) searchContacts(ctx context.Context, term string) ([]entity.Contact, error) {
	query := `
		SELECT ` + contactColumns + ` FROM contacts
		WHERE instr(lower(name), ?) > 0
		   OR instr(lower(email), ?) > 0
		   OR instr(lower(title), ?) > 0
		ORDER BY rowid
	`

	rows, err := r.DB.QueryContext(ctx, query, term, term, term)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()

	contacts := []entity.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("search contacts: %w", err)
		}
		contacts = append(contacts, *contact)
	}

	return contacts, rows.Err()
}

func scanOpportunityRows(rows *sql.Rows, err error) ([]entity.Opportunity, error) {
	if err != nil {
		return nil, fmt.Errorf("search opportunities: %w", err)
	}
	defer rows.Close()

	opps := []entity.Opportunity{}
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("search opportunities: %w", err)
		}
		opps = append(opps, *opp)
	}

	return opps, rows.Err()
}
