package models

type Message struct {
	BaseModel
	FromUserID string `gorm:"not null;index" json:"from_user_id"`
	ToUserID   string `gorm:"not null;index" json:"to_user_id"`
	Content    string `gorm:"not null" json:"content"`
	Read       bool   `gorm:"default:false" json:"read"`
}
