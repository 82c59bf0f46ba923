package dto

import "classifieds_backend/internal/models"

// CreateAdForm is the multipart form for posting an ad. The optional image
// file travels outside this struct.
type CreateAdForm struct {
	Title       string  `form:"title" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Category    string  `form:"category" validate:"required,ad_category"`
	Location    string  `form:"location" validate:"required,location"`
	UserID      string  `form:"user_id" validate:"required"`
	Age         *int    `form:"age" validate:"omitempty,min=18"`
	Phone       *string `form:"phone"`
	Whatsapp    *string `form:"whatsapp"`
}

type CreateAdResponse struct {
	Message string `json:"message"`
	AdID    string `json:"ad_id"`
}

// ListAdsQuery carries the optional listing filters. "All" on category or
// location disables that filter.
type ListAdsQuery struct {
	Category string `form:"category"`
	Location string `form:"location"`
	Search   string `form:"search"`
	Limit    int    `form:"limit,default=20"`
	Skip     int    `form:"skip,default=0"`
}

// AdResponse is an ad annotated with the poster's display name.
type AdResponse struct {
	models.Ad
	UserName string `json:"user_name"`
}

type ListAdsResponse struct {
	Ads []AdResponse `json:"ads"`
}
