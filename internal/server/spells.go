package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	spelldomain "github.com/spellworks/grimoire/internal/spell/domain"
	"go.uber.org/zap"
)

type spellRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TypeID      string `json:"typeId"`
}

func (s *Server) CreateSpell(c *gin.Context) {
	var req spellRequest
	_ = c.ShouldBindJSON(&req)

	if !requireFields(c,
		field{"name", req.Name},
		field{"description", req.Description},
		field{"typeId", req.TypeID},
	) {
		return
	}

	sp, err := s.spellSvc.Create(c.Request.Context(), spelldomain.CreateSpellRequest{
		Name:        req.Name,
		Description: req.Description,
		TypeID:      req.TypeID,
	})
	if err != nil {
		if errors.Is(err, spelldomain.ErrNameTaken) {
			// Historical contract: duplicate-name responses carry success=true.
			respondOK(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		// Historical contract: storage failures on spell creation still
		// answer 201 with success=true and the error text as the message.
		s.log.Error("create spell failed", zap.Error(err))
		respondOK(c, http.StatusCreated, errMessage(err, "failed to create spell"), nil)
		return
	}

	respondOK(c, http.StatusCreated, "Spell created successfully", sp)
}

func (s *Server) ListSpells(c *gin.Context) {
	page := parsePagination(c)

	spells, total, err := s.spellSvc.List(c.Request.Context(), page)
	if err != nil {
		s.log.Error("list spells failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to fetch spells"))
		return
	}

	respondList(c, "Spell fetched successfully", spells, page.BuildMeta(total))
}

func (s *Server) GetSpellByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "Spell ID is required")
		return
	}

	sp, err := s.spellSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, spelldomain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "Spell not found")
			return
		}
		s.log.Error("get spell failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Error in fetching spell"))
		return
	}

	respondOK(c, http.StatusOK, "Fetched spell successfully", sp)
}

func (s *Server) EditSpell(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "Spell ID is required")
		return
	}

	var req spellRequest
	_ = c.ShouldBindJSON(&req)

	if !requireAnyField(c,
		field{"name", req.Name},
		field{"description", req.Description},
		field{"typeId", req.TypeID},
	) {
		return
	}

	sp, err := s.spellSvc.Edit(c.Request.Context(), id, spelldomain.UpdateSpellRequest{
		Name:        optional(req.Name),
		Description: optional(req.Description),
		TypeID:      optional(req.TypeID),
	})
	if err != nil {
		if errors.Is(err, spelldomain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "Spell not found")
			return
		}
		s.log.Error("edit spell failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to edit spell"))
		return
	}

	// Historical contract: the success message says "Spell type".
	respondOK(c, http.StatusOK, "Spell type edited successfully", sp)
}

func (s *Server) DeleteSpell(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "Spell ID is required")
		return
	}

	if err := s.spellSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, spelldomain.ErrNotFound) {
			respondFail(c, http.StatusOK, "Spell not found")
			return
		}
		s.log.Error("delete spell failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to delete spell"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Spell deleted successfully",
		"id":      id,
	})
}
