package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/bakery-order-app/config"
	"github.com/yeremiapane/bakery-order-app/controllers"
	"github.com/yeremiapane/bakery-order-app/middlewares"
	"github.com/yeremiapane/bakery-order-app/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, store *services.SessionStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole API.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Serve attached images back to the form for previews.
	r.Static("/uploads", cfg.UploadDir)

	uploader := services.NewSupabaseStorage(cfg)
	submissions := services.NewSubmissionService(db, uploader)

	catalogCtrl := controllers.NewCatalogController()
	sessionCtrl := controllers.NewSessionController(store, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(store, submissions)

	r.GET("/catalog", catalogCtrl.GetCatalog)

	// Share links look like /order/<subscriber>/<number of products>.
	r.POST("/order/:subscriber_id/:num_products", sessionCtrl.OpenSession)

	sessions := r.Group("/sessions")
	{
		sessions.GET("/:session_id", sessionCtrl.GetSession)
		sessions.PATCH("/:session_id", sessionCtrl.UpdateSession)
		sessions.DELETE("/:session_id", sessionCtrl.CloseSession)
		sessions.POST("/:session_id/items", sessionCtrl.AddItem)
		sessions.DELETE("/:session_id/items/:index", sessionCtrl.RemoveItem)
		sessions.POST("/:session_id/items/:index/image", sessionCtrl.UploadItemImage)
		sessions.POST("/:session_id/payment-screenshot", sessionCtrl.UploadPaymentScreenshot)
		sessions.POST("/:session_id/submit", middlewares.NewSubmitRateLimiter(), orderCtrl.SubmitOrder)
	}

	r.POST("/orders/quote", orderCtrl.QuoteOrder)

	return r
}
