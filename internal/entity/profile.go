package entity

import "time"

// UserProfile is a singleton; there is exactly one row and it is never
// created or deleted through the API, only merged into.
type UserProfile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Company          string    `json:"company"`
	Title            string    `json:"title"`
	Phone            string    `json:"phone,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Location         string    `json:"location,omitempty"`
	Timezone         string    `json:"timezone,omitempty"`
	QuotaTarget      string    `json:"quota_target,omitempty"`
	DashboardWidgets []string  `json:"dashboard_widgets"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ProfilePatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Company     *string `json:"company,omitempty"`
	Title       *string `json:"title,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	QuotaTarget *string `json:"quota_target,omitempty"`
}

func (u *UserProfile) Apply(p ProfilePatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Timezone != nil {
		u.Timezone = *p.Timezone
	}
	if p.QuotaTarget != nil {
		u.QuotaTarget = *p.QuotaTarget
	}
	u.UpdatedAt = time.Now().UTC()
}
