package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// spreadsheetURL is where the future cloud spreadsheet sync will land; the
// dashboard links to it from the sync indicator.
const spreadsheetURL = "https://docs.google.com/spreadsheets/"

func (s *Server) listReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": s.store.Reports()})
}

func (s *Server) generateReport(c *gin.Context) {
	var body struct {
		BuildingID string `json:"buildingId"`
		Month      string `json:"month"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report request"})
		return
	}
	report, err := s.store.GenerateMonthlyReport(c.Request.Context(), body.BuildingID, body.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) syncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"syncing":  s.store.Syncing(),
		"lastSync": s.store.LastSync(),
	})
}

func (s *Server) spreadsheetLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": spreadsheetURL})
}
