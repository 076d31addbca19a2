package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
)

type setRoleRequest struct {
	Role userdomain.Role `json:"role" binding:"required"`
}

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.userSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (s *Server) SetUserRole(c *gin.Context) {
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.userSvc.SetRole(c.Request.Context(), userID, req.Role); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user role updated"})
}
