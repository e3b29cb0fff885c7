// AngelaMos | 2026
// dto.go

package store

import (
	"time"
)

type UpdateStoreRequest struct {
	Name       *string   `json:"name,omitempty"       validate:"omitempty,min=1,max=120"`
	Address    *string   `json:"address,omitempty"    validate:"omitempty,max=255"`
	Phone      *string   `json:"phone,omitempty"      validate:"omitempty,max=40"`
	Website    *string   `json:"website,omitempty"    validate:"omitempty,url,max=255"`
	Categories *[]string `json:"categories,omitempty" validate:"omitempty,max=3,dive,min=1,max=60"`
}

type BanStoreRequest struct {
	IsBanned *bool `json:"is_banned" validate:"required"`
}

type StoreResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	Website       string     `json:"website"`
	Plan          string     `json:"plan"`
	TrialEndsAt   *time.Time `json:"trial_ends_at"`
	BillingStatus string     `json:"billing_status"`
	IsBanned      bool       `json:"is_banned"`
	Categories    []string   `json:"categories"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ListStoresParams struct {
	Page     int
	PageSize int
	Search   string
	Banned   *bool
}

func (p *ListStoresParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListStoresParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToStoreResponse(s *Store) StoreResponse {
	return StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		Phone:         s.Phone,
		Website:       s.Website,
		Plan:          s.Plan,
		TrialEndsAt:   s.TrialEndsAt,
		BillingStatus: s.BillingStatus,
		IsBanned:      s.IsBanned,
		Categories:    s.Categories,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func ToStoreResponseList(stores []Store) []StoreResponse {
	responses := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		responses = append(responses, ToStoreResponse(&s))
	}
	return responses
}
