package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agriconnect/marketplace-api/internal/audit"
	"github.com/agriconnect/marketplace-api/internal/cache"
	"github.com/agriconnect/marketplace-api/internal/config"
	"github.com/agriconnect/marketplace-api/internal/handlers"
	infraRepo "github.com/agriconnect/marketplace-api/internal/infra/repository"
	"github.com/agriconnect/marketplace-api/internal/mailer"
	"github.com/agriconnect/marketplace-api/internal/middleware"
	"github.com/agriconnect/marketplace-api/internal/storage"
	"github.com/agriconnect/marketplace-api/internal/token"
	ucContact "github.com/agriconnect/marketplace-api/internal/usecase/contact"
	ucProduct "github.com/agriconnect/marketplace-api/internal/usecase/product"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	productRepo := infraRepo.NewProductGormRepository(db)
	contactRepo := infraRepo.NewContactGormRepository(db)

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	catalogCache := cache.NewCatalog(cfg)
	uploader := storage.NewS3Uploader(cfg)
	contactMailer := mailer.NewSMTP(cfg)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// USE CASES
	// ======================================================
	listAllUC := ucProduct.NewListAllProducts(productRepo, catalogCache)
	listMineUC := ucProduct.NewListMyProducts(productRepo)
	createUC := ucProduct.NewCreateProduct(productRepo, catalogCache, auditDispatcher)
	deleteUC := ucProduct.NewDeleteProduct(productRepo, catalogCache, auditDispatcher)
	attachImageUC := ucProduct.NewAttachProductImage(productRepo, catalogCache, uploader, auditDispatcher)

	submitInquiryUC := ucContact.NewSubmitInquiry(contactRepo, contactMailer)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, tokens, auditDispatcher)
	productHandler := handlers.NewProductHandler(listAllUC, listMineUC, createUC, deleteUC, attachImageUC)
	contactHandler := handlers.NewContactHandler(submitInquiryUC)
	activityHandler := handlers.NewActivityHandler(db)
	pagesHandler := handlers.NewPagesHandler(cfg.PublicDir)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.POST("/contact", contactHandler.Submit)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.GET("/auth/me/activity", activityHandler.List)

			secured.GET("/products/my-listings", productHandler.MyListings)
			secured.POST("/products", productHandler.Create)
			secured.DELETE("/products/:id", productHandler.Delete)
			secured.POST("/products/:id/image", productHandler.UploadImage)
		}
	}

	// ======================================================
	// STATIC PAGES + FALLBACK
	// ======================================================
	pagesHandler.Register(r)
}
