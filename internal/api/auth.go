package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) login(c *gin.Context) {
	var body struct {
		Credential string `json:"credential"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Credential == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Credential is required"})
		return
	}
	identity, err := s.auth.Login(c.Request.Context(), body.Credential)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to decode credential"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (s *Server) loginGuest(c *gin.Context) {
	identity, err := s.auth.LoginGuest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store identity"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (s *Server) currentIdentity(c *gin.Context) {
	identity, err := s.auth.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load identity"})
		return
	}
	if identity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (s *Server) logout(c *gin.Context) {
	if err := s.auth.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.Status(http.StatusNoContent)
}
