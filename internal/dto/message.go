package dto

import "classifieds_backend/internal/models"

type SendMessageRequest struct {
	ToUserID string `json:"to_user_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
	// SenderID may also arrive as the sender_id query parameter, which
	// takes precedence over the body field.
	SenderID string `json:"sender_id"`
}

type SendMessageResponse struct {
	Message string `json:"message"`
}

type ConversationResponse struct {
	Messages []models.Message `json:"messages"`
}
