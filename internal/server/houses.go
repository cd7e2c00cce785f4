package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	housedomain "github.com/spellworks/grimoire/internal/house/domain"
	"go.uber.org/zap"
)

type houseRequest struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Creator string `json:"creator"`
}

func (s *Server) CreateHouse(c *gin.Context) {
	var req houseRequest
	_ = c.ShouldBindJSON(&req)

	if !requireFields(c,
		field{"name", req.Name},
		field{"logo", req.Logo},
		field{"creator", req.Creator},
	) {
		return
	}

	h, err := s.houseSvc.Create(c.Request.Context(), housedomain.CreateHouseRequest{
		Name:    req.Name,
		Logo:    req.Logo,
		Creator: req.Creator,
	})
	if err != nil {
		if errors.Is(err, housedomain.ErrNameTaken) {
			// Historical contract: duplicate-name responses carry success=true.
			respondOK(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		s.log.Error("create house failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to create house"))
		return
	}

	respondOK(c, http.StatusOK, "House created successfully", h)
}

func (s *Server) ListHouses(c *gin.Context) {
	page := parsePagination(c)

	houses, total, err := s.houseSvc.List(c.Request.Context(), page)
	if err != nil {
		s.log.Error("list houses failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to fetch house"))
		return
	}

	respondList(c, "Successfully fetched House", houses, page.BuildMeta(total))
}

func (s *Server) GetHouseByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "House ID is required")
		return
	}

	h, err := s.houseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, housedomain.ErrNotFound) {
			respondFail(c, http.StatusOK, "House not found")
			return
		}
		s.log.Error("get house failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Error in fetching house"))
		return
	}

	respondOK(c, http.StatusOK, "Fetched house successfully", h)
}

func (s *Server) EditHouse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "House ID is required")
		return
	}

	var req houseRequest
	_ = c.ShouldBindJSON(&req)

	if !requireAnyField(c,
		field{"name", req.Name},
		field{"logo", req.Logo},
		field{"creator", req.Creator},
	) {
		return
	}

	h, err := s.houseSvc.Edit(c.Request.Context(), id, housedomain.UpdateHouseRequest{
		Name:    optional(req.Name),
		Logo:    optional(req.Logo),
		Creator: optional(req.Creator),
	})
	if err != nil {
		if errors.Is(err, housedomain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "House not found")
			return
		}
		s.log.Error("edit house failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to edit house"))
		return
	}

	respondOK(c, http.StatusOK, "House edited successfully", h)
}

func (s *Server) DeleteHouse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondFail(c, http.StatusBadRequest, "House ID is required")
		return
	}

	if err := s.houseSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, housedomain.ErrNotFound) {
			respondFail(c, http.StatusOK, "House not found")
			return
		}
		s.log.Error("delete house failed", zap.Error(err))
		respondFail(c, http.StatusInternalServerError, errMessage(err, "Failed to delete House"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "House deleted successfully",
		"id":      id,
	})
}
