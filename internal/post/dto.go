// AngelaMos | 2026
// dto.go

package post

import (
	"time"
)

type CreatePostRequest struct {
	Title         string     `json:"title"          validate:"required,min=1,max=160"`
	Description   string     `json:"description"    validate:"max=4000"`
	Category      string     `json:"category"       validate:"required,min=1,max=60"`
	Categories    []string   `json:"categories"     validate:"max=3,dive,min=1,max=60"`
	PriceOriginal float64    `json:"price_original" validate:"required,gt=0"`
	PriceSale     float64    `json:"price_sale"     validate:"required,gt=0"`
	Images        []string   `json:"images"         validate:"max=10,dive,url"`
	BuyURL        string     `json:"buy_url"        validate:"omitempty,url,max=500"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
}

type UpdatePostRequest struct {
	Title         *string    `json:"title,omitempty"          validate:"omitempty,min=1,max=160"`
	Description   *string    `json:"description,omitempty"    validate:"omitempty,max=4000"`
	Category      *string    `json:"category,omitempty"       validate:"omitempty,min=1,max=60"`
	Categories    *[]string  `json:"categories,omitempty"     validate:"omitempty,max=3,dive,min=1,max=60"`
	PriceOriginal *float64   `json:"price_original,omitempty" validate:"omitempty,gt=0"`
	PriceSale     *float64   `json:"price_sale,omitempty"     validate:"omitempty,gt=0"`
	Images        *[]string  `json:"images,omitempty"         validate:"omitempty,max=10,dive,url"`
	BuyURL        *string    `json:"buy_url,omitempty"        validate:"omitempty,url,max=500"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
}

type PostResponse struct {
	ID            string     `json:"id"`
	StoreID       string     `json:"store_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Categories    []string   `json:"categories"`
	PriceOriginal float64    `json:"price_original"`
	PriceSale     float64    `json:"price_sale"`
	Discount      int        `json:"discount"`
	Images        []string   `json:"images"`
	BuyURL        string     `json:"buy_url"`
	StartsAt      *time.Time `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at"`
	ViewCount     int64      `json:"view_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type StoreSummaryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Website       string    `json:"website"`
	Plan          string    `json:"plan"`
	BillingStatus string    `json:"billing_status"`
	Categories    []string  `json:"categories"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListingResponse struct {
	PostResponse
	Store StoreSummaryResponse `json:"store"`
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Categories:    p.Categories,
		PriceOriginal: p.PriceOriginal,
		PriceSale:     p.PriceSale,
		Discount:      p.Discount(),
		Images:        p.Images,
		BuyURL:        p.BuyURL,
		StartsAt:      p.StartsAt,
		EndsAt:        p.EndsAt,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToListingResponse(l *Listing) ListingResponse {
	return ListingResponse{
		PostResponse: ToPostResponse(&l.Post),
		Store: StoreSummaryResponse{
			ID:            l.Store.ID,
			Name:          l.Store.Name,
			Address:       l.Store.Address,
			Phone:         l.Store.Phone,
			Website:       l.Store.Website,
			Plan:          l.Store.Plan,
			BillingStatus: l.Store.BillingStatus,
			Categories:    l.Store.Categories,
			CreatedAt:     l.Store.CreatedAt,
		},
	}
}

func ToListingResponseList(listings []Listing) []ListingResponse {
	responses := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, ToListingResponse(&listings[i]))
	}
	return responses
}
