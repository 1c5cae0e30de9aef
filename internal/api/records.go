package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proptrack-io/property-management-service/internal/model"
	"github.com/proptrack-io/property-management-service/internal/store"
)

// writeDeleteError maps the store's guard failures to 409 with the verbatim
// message; anything else is a 500.
func writeDeleteError(c *gin.Context, err error) {
	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Reason})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
}

func (s *Server) listOwners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"owners": s.store.Owners()})
}

func (s *Server) createOwner(c *gin.Context) {
	var owner model.Owner
	if err := c.ShouldBindJSON(&owner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner payload"})
		return
	}
	created, err := s.store.AddOwner(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save owner"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) deleteOwner(c *gin.Context) {
	if err := s.store.DeleteOwner(c.Request.Context(), c.Param("id")); err != nil {
		writeDeleteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listBuildings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buildings": s.store.Buildings()})
}

func (s *Server) createBuilding(c *gin.Context) {
	var building model.Building
	if err := c.ShouldBindJSON(&building); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building payload"})
		return
	}
	created, err := s.store.AddBuilding(c.Request.Context(), building)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save building"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) deleteBuilding(c *gin.Context) {
	if err := s.store.DeleteBuilding(c.Request.Context(), c.Param("id")); err != nil {
		writeDeleteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listUnits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"units": s.store.Units(c.Query("buildingId"))})
}

func (s *Server) createUnit(c *gin.Context) {
	var unit model.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit payload"})
		return
	}
	created, err := s.store.AddUnit(c.Request.Context(), unit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save unit"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateUnitStatus(c *gin.Context) {
	var body struct {
		Status model.OccupancyStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload"})
		return
	}
	if err := s.store.UpdateUnitStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update unit"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listTenants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tenants": s.store.Tenants()})
}

func (s *Server) createTenant(c *gin.Context) {
	var tenant model.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant payload"})
		return
	}
	created, err := s.store.AddTenant(c.Request.Context(), tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tenant"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) deleteTenant(c *gin.Context) {
	if err := s.store.DeleteTenant(c.Request.Context(), c.Param("id")); err != nil {
		writeDeleteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
