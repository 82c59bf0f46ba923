package models

type Ad struct {
	BaseModel
	UserID      string   `gorm:"not null;index" json:"user_id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	Category    Category `gorm:"type:varchar(64);not null;index" json:"category"`
	Location    Location `gorm:"type:varchar(64);not null;index" json:"location"`
	Age         *int     `json:"age,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Whatsapp    *string  `json:"whatsapp,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Active      bool     `gorm:"default:true;index" json:"active"`
	Views       int64    `gorm:"default:0" json:"views"`
}
