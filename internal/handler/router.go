package handler

import (
	"net/http"
	"time"

	"classroom-market/config"
	"classroom-market/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Purchase *PurchaseHandler
	Student  *StudentHandler
	Item     *ItemHandler
	Cart     *CartHandler
	Teacher  *TeacherHandler
}

func NewRouter(cfg config.ServerConfig, auth service.TeacherAuthService, h Handlers) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedCORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", TeacherTokenHeader, "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")
	teacher := api.Group("", TeacherAuth(auth))

	h.Teacher.RegisterRoutes(api, teacher)
	h.Student.RegisterRoutes(api, teacher)
	h.Item.RegisterRoutes(api, teacher)
	h.Purchase.RegisterRoutes(api, teacher)
	h.Cart.RegisterRoutes(api)

	return r
}
