package handlers

import (
	"net/http"

	"classifieds_backend/internal/dto"
	"classifieds_backend/internal/services"
	"classifieds_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.Send)
		messages.GET("/:user_id", h.Conversation)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	// sender_id as a query parameter wins over the body field
	senderID := c.Query("sender_id")
	if senderID == "" {
		senderID = req.SenderID
	}
	if senderID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing sender_id"))
		return
	}

	resp, err := h.messageService.Send(senderID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Conversation returns the dialog between two users and marks the incoming
// side read. There is no way to peek without acknowledging.
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID := c.Param("user_id")
	otherUserID := c.Query("other_user_id")
	if otherUserID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: other_user_id"))
		return
	}

	resp, err := h.messageService.ConversationAndMarkRead(userID, otherUserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
