package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	spelltypedomain "github.com/spellworks/grimoire/internal/spelltype/domain"
	"go.uber.org/zap"
)

type spellTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) CreateSpellType(c *gin.Context) {
	var req spellTypeRequest
	_ = c.ShouldBindJSON(&req)

	if !requireFields(c,
		field{"name", req.Name},
		field{"description", req.Description},
	) {
		return
	}

	st, err := s.spellTypeSvc.Create(c.Request.Context(), spelltypedomain.CreateSpellTypeRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, spelltypedomain.ErrNameTaken) {
			// Historical contract: duplicate-name responses carry success=true.
			respondOK(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		s.log.Error("create spell type failed", zap.Error(err))
		respondFail(c, http.StatusBadRequest, errMessage(err, "Failed to create spell type"))
		return
	}

	respondOK(c, http.StatusCreated, "Spell Type created successfully", st)
}

func (s *Server) ListSpellTypes(c *gin.Context) {
	page := parsePagination(c)

	types, total, err := s.spellTypeSvc.List(c.Request.Context(), page)
	if err != nil {
		s.log.Error("list spell types failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to fetch spell types"))
		return
	}

	// This listing carries no message field.
	respondList(c, "", types, page.BuildMeta(total))
}

func (s *Server) GetSpellTypeByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "SpellType ID is required")
		return
	}

	st, err := s.spellTypeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, spelltypedomain.ErrNotFound) {
			respondFail(c, http.StatusOK, "Spell not found")
			return
		}
		s.log.Error("get spell type failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Error in fetching spell Type"))
		return
	}

	respondOK(c, http.StatusOK, "Fetched spell Type successfully", st)
}

func (s *Server) EditSpellType(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "Spell Type ID is required")
		return
	}

	var req spellTypeRequest
	_ = c.ShouldBindJSON(&req)

	if !requireAnyField(c,
		field{"name", req.Name},
		field{"description", req.Description},
	) {
		return
	}

	st, err := s.spellTypeSvc.Edit(c.Request.Context(), id, spelltypedomain.UpdateSpellTypeRequest{
		Name:        optional(req.Name),
		Description: optional(req.Description),
	})
	if err != nil {
		if errors.Is(err, spelltypedomain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "Spell type not found")
			return
		}
		s.log.Error("edit spell type failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to edit spell type"))
		return
	}

	respondOK(c, http.StatusOK, "Spell type edited successfully", st)
}

func (s *Server) DeleteSpellType(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "SpellType ID is required")
		return
	}

	if err := s.spellTypeSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, spelltypedomain.ErrNotFound) {
			respondFail(c, http.StatusOK, "Spell type not found")
			return
		}
		s.log.Error("delete spell type failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to delete spell type"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Spell type deleted successfully",
		"id":      id,
	})
}
