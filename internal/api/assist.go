package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proptrack-io/property-management-service/internal/assist"
	"github.com/proptrack-io/property-management-service/internal/model"
)

func (s *Server) askAssistant(c *gin.Context) {
	var body struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}
	if body.Context == "" {
		body.Context = s.portfolioContext()
	}
	reply := s.assist.Ask(c.Request.Context(), body.Question, body.Context)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (s *Server) insights(c *gin.Context) {
	units := s.store.Units("")
	vacant := 0
	for _, u := range units {
		if u.Status == model.StatusVacant {
			vacant++
		}
	}
	expenseTotal := 0.0
	for _, e := range s.store.Expenses("") {
		expenseTotal += e.Amount
	}
	buildings := s.store.Buildings()
	names := make([]string, 0, len(buildings))
	for _, b := range buildings {
		names = append(names, b.Name)
	}

	summary := assist.Summary{
		Buildings:          len(buildings),
		Units:              len(units),
		VacantUnits:        vacant,
		RecentExpenseTotal: expenseTotal,
		BuildingNames:      names,
	}
	c.JSON(http.StatusOK, gin.H{"insights": s.assist.Insights(c.Request.Context(), summary)})
}

// portfolioContext is the short data summary sent alongside assistant
// questions when the caller does not supply one.
func (s *Server) portfolioContext() string {
	return fmt.Sprintf("The portfolio has %d buildings and %d units.",
		len(s.store.Buildings()), len(s.store.Units("")))
}
