package server

import (
	"net/http"

	admindomain "github.com/spellworks/grimoire/internal/admin/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type adminCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) CreateAdmin(c *gin.Context) {
	var req adminCredentialsRequest
	_ = c.ShouldBindJSON(&req)

	if !requireFields(c,
		field{"email", req.Email},
		field{"password", req.Password},
	) {
		return
	}

	a, err := s.adminSvc.Create(c.Request.Context(), admindomain.CreateAdminRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.log.Warn("create admin failed", zap.Error(err))
		respondFail(c, http.StatusBadRequest, errMessage(err, "Failed to create admin"))
		return
	}

	respondOK(c, http.StatusCreated, "User created successfully", gin.H{
		"id":    a.ID,
		"email": a.Email,
	})
}

func (s *Server) AdminLogin(c *gin.Context) {
	var req adminCredentialsRequest
	_ = c.ShouldBindJSON(&req)

	if !requireFields(c,
		field{"email", req.Email},
		field{"password", req.Password},
	) {
		return
	}

	result, err := s.adminSvc.Login(c.Request.Context(), admindomain.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.log.Warn("admin login failed", zap.Error(err))
		respondFail(c, http.StatusBadRequest, errMessage(err, "error in admin login"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin logged in successfully",
		"data": gin.H{
			"id":    result.Admin.ID,
			"email": result.Admin.Email,
		},
		"token": result.Token,
	})
}
