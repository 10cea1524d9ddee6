package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Contact always belongs to an account; AccountID is the one mandatory
// relationship in the model.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Title       string    `json:"title"`
	Department  string    `json:"department,omitempty"`
	AccountID   string    `json:"account_id"`
	IsPrimary   bool      `json:"is_primary"`
	LinkedInURL string    `json:"linkedin_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ContactParams struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Title       string `json:"title"`
	Department  string `json:"department,omitempty"`
	AccountID   string `json:"account_id"`
	IsPrimary   bool   `json:"is_primary"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func NewContact(p ContactParams) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Title:       p.Title,
		Department:  p.Department,
		AccountID:   p.AccountID,
		IsPrimary:   p.IsPrimary,
		LinkedInURL: p.LinkedInURL,
		Notes:       p.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.AccountID == "" {
		return errors.New("account_id is required")
	}
	return nil
}

type ContactPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Title       *string `json:"title,omitempty"`
	Department  *string `json:"department,omitempty"`
	AccountID   *string `json:"account_id,omitempty"`
	IsPrimary   *bool   `json:"is_primary,omitempty"`
	LinkedInURL *string `json:"linkedin_url,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (c *Contact) Apply(p ContactPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Department != nil {
		c.Department = *p.Department
	}
	if p.AccountID != nil {
		c.AccountID = *p.AccountID
	}
	if p.IsPrimary != nil {
		c.IsPrimary = *p.IsPrimary
	}
	if p.LinkedInURL != nil {
		c.LinkedInURL = *p.LinkedInURL
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	c.UpdatedAt = time.Now().UTC()
}
