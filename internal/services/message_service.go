package services

import (
	"classifieds_backend/internal/dto"
	"classifieds_backend/internal/models"
	"classifieds_backend/internal/repositories"
	"classifieds_backend/pkg/apperrors"
)

type MessageService interface {
	Send(senderID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	// ConversationAndMarkRead is a read with a side effect: fetching a
	// conversation acknowledges every message addressed to userID.
	ConversationAndMarkRead(userID, otherUserID string) (*dto.ConversationResponse, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Send delivers a direct message between two existing users. Self-messages
// are allowed.
func (s *MessageServiceImpl) Send(senderID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if _, err := s.userRepo.FindByID(senderID); err != nil {
		return nil, s.mapUserLookupError(err)
	}
	if _, err := s.userRepo.FindByID(req.ToUserID); err != nil {
		return nil, s.mapUserLookupError(err)
	}

	message := &models.Message{
		FromUserID: senderID,
		ToUserID:   req.ToUserID,
		Content:    req.Content,
		Read:       false,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SendMessageResponse{Message: "Message sent successfully"}, nil
}

// ConversationAndMarkRead returns both directions of the dialog in
// ascending time order, then marks the incoming side read. The returned
// snapshot predates the flag flip, so a first fetch still shows unread
// messages.
func (s *MessageServiceImpl) ConversationAndMarkRead(userID, otherUserID string) (*dto.ConversationResponse, error) {
	messages, err := s.messageRepo.FindConversation(userID, otherUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.messageRepo.MarkRead(otherUserID, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ConversationResponse{Messages: messages}, nil
}

func (s *MessageServiceImpl) mapUserLookupError(err error) error {
	if apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrUserNotFound
	}
	return apperrors.InternalError(err)
}
