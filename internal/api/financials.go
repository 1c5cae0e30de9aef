package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proptrack-io/property-management-service/internal/model"
)

func (s *Server) listPayments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"payments": s.store.Payments()})
}

func (s *Server) createPayment(c *gin.Context) {
	var payment model.RentPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment payload"})
		return
	}
	created, err := s.store.AddPayment(c.Request.Context(), payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) listExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"expenses": s.store.Expenses(c.Query("buildingId"))})
}

func (s *Server) createExpense(c *gin.Context) {
	var expense model.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense payload"})
		return
	}
	created, err := s.store.AddExpense(c.Request.Context(), expense)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save expense"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
