package server

import (
	"net/http"

	messagedomain "github.com/evabo/wasteflow/internal/message/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type createMessageRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
}

func (s *Server) CreateMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.messageSvc.Create(c.Request.Context(), messagedomain.CreateMessageRequest{
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMessages(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Recipient string `form:"recipient"`
		Sender    string `form:"sender"`
		Status    string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.messageSvc.List(c.Request.Context(), messagedomain.ListMessageRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Recipient: query.Recipient,
		Sender:    query.Sender,
		Status:    query.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMessageByID(c *gin.Context) {
	resp, err := s.messageSvc.GetByID(c.Request.Context(), messagedomain.GetMessageRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateMessageRequest struct {
	Status *string `json:"status"`
}

func (s *Server) UpdateMessage(c *gin.Context) {
	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.messageSvc.Update(c.Request.Context(), messagedomain.UpdateMessageRequest{
		ID:     c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UnreadMessageCount(c *gin.Context) {
	count, err := s.messageSvc.UnreadCount(c.Request.Context(), c.Query("recipient"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"unread": count}})
}

func isMessageValidationError(err error) bool {
	switch err {
	case messagedomain.ErrInvalidSender,
		messagedomain.ErrInvalidRecipient,
		messagedomain.ErrInvalidSubject,
		messagedomain.ErrInvalidContent,
		messagedomain.ErrInvalidStatus,
		messagedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
