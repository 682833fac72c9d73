package handler

import (
	"Vynce/internal/api/dto"
	"Vynce/internal/pkg/response"
	"Vynce/internal/service"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DropHandler struct {
	dropSvc service.DropService
	feedSvc service.FeedService
}

func NewDropHandler(dropSvc service.DropService, feedSvc service.FeedService) *DropHandler {
	return &DropHandler{
		dropSvc: dropSvc,
		feedSvc: feedSvc,
	}
}

func (s *DropHandler) CreateDrop(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateDropDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	denied, err := s.dropSvc.CreateDrop(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrDropRateLimited) && denied != nil {
			response.FailWithData(c, service.TooManyRequests, denied.Message, denied)
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *DropHandler) GetDrop(c *gin.Context) {
	dropIDStr := c.Param("drop_id")
	dropID, err := strconv.ParseUint(dropIDStr, 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	drop, err := s.dropSvc.GetDrop(c.Request.Context(), dropID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, drop)
}

func (s *DropHandler) GetDropsSelf(c *gin.Context) {
	userID := c.GetUint64("user_id")
	s.listDropsByUser(c, userID)
}

func (s *DropHandler) GetDropsByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}
	s.listDropsByUser(c, userID)
}

func (s *DropHandler) listDropsByUser(c *gin.Context, userID uint64) {
	var listDTO dto.DropListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	drops, err := s.dropSvc.GetDropsByUserID(c.Request.Context(), userID, listDTO.Page, listDTO.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, drops)
}

func (s *DropHandler) DeleteDrop(c *gin.Context) {
	userID := c.GetUint64("user_id")
	dropIDStr := c.Param("drop_id")

	dropID, err := strconv.ParseUint(dropIDStr, 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.dropSvc.DeleteDrop(c.Request.Context(), userID, dropID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *DropHandler) Feed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var listDTO dto.DropListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	feedPage, err := s.feedSvc.GetFeed(c.Request.Context(), userID, listDTO.Page, listDTO.PageSize, listDTO.Topic)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, feedPage)
}

func (s *DropHandler) Interests(c *gin.Context) {
	userID := c.GetUint64("user_id")

	interests, err := s.feedSvc.GetUserInterests(c.Request.Context(), userID, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, interests)
}
