package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spellworks/grimoire/internal/plan"
	userdomain "github.com/spellworks/grimoire/internal/user/domain"
	"go.uber.org/zap"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

func (s *Server) CreateUser(c *gin.Context) {
	var req createUserRequest
	_ = c.ShouldBindJSON(&req)

	if !requireFields(c,
		field{"name", req.Name},
		field{"email", req.Email},
		field{"plan", req.Plan},
	) {
		return
	}

	p, ok := plan.Parse(req.Plan)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid plan value",
			"allowed": plan.Names(),
		})
		return
	}

	u, err := s.userSvc.Create(c.Request.Context(), userdomain.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Plan:  p,
	})
	if err != nil {
		s.log.Warn("create user failed", zap.Error(err))
		respondFail(c, http.StatusBadRequest, errMessage(err, "Failed to create user"))
		return
	}

	respondOK(c, http.StatusCreated, "User created successfully", gin.H{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"plan":   u.Plan,
		"apiKey": u.APIKey,
	})
}

func (s *Server) GetUsers(c *gin.Context) {
	page := parsePagination(c)

	users, total, err := s.userSvc.List(c.Request.Context(), page)
	if err != nil {
		s.log.Error("list users failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to fetch users"))
		return
	}

	respondList(c, "Users fetched successfully", users, page.BuildMeta(total))
}

func (s *Server) GetUserDetail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "User ID is required")
		return
	}

	u, err := s.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "User not found")
			return
		}
		s.log.Error("get user failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to fetch user"))
		return
	}

	page := parsePagination(c)
	events, usageCount, err := s.usageSvc.ListByUser(c.Request.Context(), u.ID, page)
	if err != nil {
		s.log.Error("list usage failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to fetch user"))
		return
	}

	data := gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"plan":       u.Plan,
		"apiKey":     u.APIKey,
		"createdAt":  u.CreatedAt,
		"usage":      events,
		"usageCount": usageCount,
	}

	env := envelope{Success: true, Message: "User fetched successfully", Data: data}
	if meta := page.BuildMeta(usageCount); meta != nil {
		env.Meta = meta
	}
	c.JSON(http.StatusOK, env)
}
