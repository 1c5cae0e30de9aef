package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/proptrack-io/property-management-service/internal/assist"
	"github.com/proptrack-io/property-management-service/internal/auth"
	"github.com/proptrack-io/property-management-service/internal/store"
)

// Server wires the record store and the gateway collaborators into HTTP
// handlers. Handlers stay thin: business rules live in the store.
type Server struct {
	store  *store.Store
	auth   *auth.Manager
	assist *assist.Client
}

func NewServer(st *store.Store, am *auth.Manager, ac *assist.Client) *Server {
	return &Server{store: st, auth: am, assist: ac}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())

	origin := os.Getenv("PROPTRACK_ALLOWED_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: origin != "*",
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/owners", s.listOwners)
		api.POST("/owners", s.createOwner)
		api.DELETE("/owners/:id", s.deleteOwner)

		api.GET("/buildings", s.listBuildings)
		api.POST("/buildings", s.createBuilding)
		api.DELETE("/buildings/:id", s.deleteBuilding)

		api.GET("/units", s.listUnits)
		api.POST("/units", s.createUnit)
		api.PATCH("/units/:id/status", s.updateUnitStatus)

		api.GET("/tenants", s.listTenants)
		api.POST("/tenants", s.createTenant)
		api.DELETE("/tenants/:id", s.deleteTenant)

		api.GET("/payments", s.listPayments)
		api.POST("/payments", s.createPayment)

		api.GET("/expenses", s.listExpenses)
		api.POST("/expenses", s.createExpense)

		api.GET("/reports", s.listReports)
		api.POST("/reports/generate", s.generateReport)

		api.GET("/sync/status", s.syncStatus)
		api.GET("/spreadsheet", s.spreadsheetLink)

		api.POST("/auth/login", s.login)
		api.POST("/auth/guest", s.loginGuest)
		api.GET("/auth/me", s.currentIdentity)
		api.POST("/auth/logout", s.logout)

		api.POST("/assistant/ask", s.askAssistant)
		api.GET("/insights", s.insights)
	}

	return r
}
