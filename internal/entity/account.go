package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Country     string    `json:"country,omitempty"`
	Employees   int       `json:"employees,omitempty"`
	Revenue     string    `json:"revenue,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AccountParams struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	Employees   int    `json:"employees,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
	Description string `json:"description,omitempty"`
}

func NewAccount(p AccountParams) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Industry:    p.Industry,
		Website:     p.Website,
		Phone:       p.Phone,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
		Employees:   p.Employees,
		Revenue:     p.Revenue,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Industry == "" {
		return errors.New("industry is required")
	}
	return nil
}

type AccountPatch struct {
	Name        *string `json:"name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Website     *string `json:"website,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Country     *string `json:"country,omitempty"`
	Employees   *int    `json:"employees,omitempty"`
	Revenue     *string `json:"revenue,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (a *Account) Apply(p AccountPatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Industry != nil {
		a.Industry = *p.Industry
	}
	if p.Website != nil {
		a.Website = *p.Website
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	if p.Employees != nil {
		a.Employees = *p.Employees
	}
	if p.Revenue != nil {
		a.Revenue = *p.Revenue
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	a.UpdatedAt = time.Now().UTC()
}
