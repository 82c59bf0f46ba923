package models

type User struct {
	BaseModel
	Email             string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string   `gorm:"not null" json:"-"`
	Name              string   `gorm:"not null" json:"name"`
	Age               *int     `json:"age,omitempty"`
	Location          Location `gorm:"type:varchar(64);not null" json:"location"`
	Verified          bool     `gorm:"default:false" json:"verified"`
	VerificationToken string   `json:"-"`
}
