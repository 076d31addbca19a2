package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type sendCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type verifyCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

func (s *Server) SendVerificationCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.verificationSvc.SendCode(c.Request.Context(), req.PhoneNumber); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

func (s *Server) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	ok, err := s.verificationSvc.VerifyCode(c.Request.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid verification code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "code verified"})
}
