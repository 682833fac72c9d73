package handler

import (
	"Vynce/internal/api/dto"
	"Vynce/internal/pkg/response"
	"Vynce/internal/service"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DropActionHandler struct {
	actionSvc service.DropActionService
}

func NewDropActionHandler(actionSvc service.DropActionService) *DropActionHandler {
	return &DropActionHandler{
		actionSvc: actionSvc,
	}
}

func (s *DropActionHandler) LikeDrop(c *gin.Context) {
	s.runDropAction(c, s.actionSvc.LikeDrop)
}

func (s *DropActionHandler) SaveDrop(c *gin.Context) {
	s.runDropAction(c, s.actionSvc.SaveDrop)
}

func (s *DropActionHandler) ShareDrop(c *gin.Context) {
	s.runDropAction(c, s.actionSvc.ShareDrop)
}

func (s *DropActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.actionSvc.CreateComment(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *DropActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentIDStr := c.Param("comment_id")

	commentID, err := strconv.ParseUint(commentIDStr, 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.actionSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// runDropAction shares the parse-then-call shape of the three counter
// endpoints, which differ only in the service method.
func (s *DropActionHandler) runDropAction(c *gin.Context, action func(ctx context.Context, userID, dropID uint64) error) {
	userID := c.GetUint64("user_id")
	dropIDStr := c.Param("drop_id")

	dropID, err := strconv.ParseUint(dropIDStr, 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = action(c.Request.Context(), userID, dropID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
