package handler

import (
	"Vynce/internal/pkg/response"
	"Vynce/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	followSvc service.UserFollowService
}

func NewUserFollowHandler(followSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{
		followSvc: followSvc,
	}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	followerID := c.GetUint64("user_id")

	followingID, err := parseTargetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.followSvc.Follow(c.Request.Context(), followerID, followingID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	followerID := c.GetUint64("user_id")

	followingID, err := parseTargetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.followSvc.Unfollow(c.Request.Context(), followerID, followingID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *UserFollowHandler) IsFollowing(c *gin.Context) {
	followerID := c.GetUint64("user_id")

	followingID, err := parseTargetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	following, err := s.followSvc.IsFollowing(c.Request.Context(), followerID, followingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"is_following": following})
}

func parseTargetUserID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("user_id"), 10, 64)
}
