package routes

import (
	"github.com/DHANUSH-web/commercial-catalog/configs"
	"github.com/DHANUSH-web/commercial-catalog/controllers"
	"github.com/DHANUSH-web/commercial-catalog/middlewares"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/services"
	"github.com/DHANUSH-web/commercial-catalog/storage"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface over whichever store and blob
// storage the config selected.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store repository.Store, blobs storage.BlobStorage) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	authSvc := services.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL)
	estSvc := services.NewEstablishmentService(store, blobs)
	attSvc := services.NewAttachmentService(store, blobs)

	// Controllers
	userCtrl := controllers.NewUserController(authSvc)
	estCtrl := controllers.NewEstablishmentController(estSvc)
	attCtrl := controllers.NewAttachmentController(attSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	api := r.Group("/api")
	{
		// Users (public)
		api.POST("/users/register", userCtrl.Register)
		api.POST("/users/login", userCtrl.Login)
		api.GET("/users/:id", userCtrl.Get)

		// Establishments — reads public, writes authenticated
		api.GET("/establishments", estCtrl.List)
		api.GET("/establishments/:id", estCtrl.Get)
		api.GET("/establishments/:id/attachments", attCtrl.ListForEstablishment)
		api.POST("/establishments", auth, estCtrl.Create)
		api.PATCH("/establishments/:id", auth, estCtrl.Update)
		api.DELETE("/establishments/:id", auth, estCtrl.Delete)

		// Attachments
		api.GET("/attachments/:id", attCtrl.Get)
		api.POST("/attachments", auth, attCtrl.Create)
		api.DELETE("/attachments/:id", auth, attCtrl.Delete)
	}
}
