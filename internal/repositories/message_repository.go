package repositories

import (
	"classifieds_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindConversation(userID, otherUserID string) ([]models.Message, error)
	MarkRead(fromUserID, toUserID string) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindConversation returns both directions of a dialog in ascending time
// order.
func (r *MessageRepositoryImpl) FindConversation(userID, otherUserID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flags every message from one user to another as read in a single
// bulk update.
func (r *MessageRepositoryImpl) MarkRead(fromUserID, toUserID string) error {
	return r.db.Model(&models.Message{}).
		Where("from_user_id = ? AND to_user_id = ? AND read = ?", fromUserID, toUserID, false).
		Update("read", true).Error
}
