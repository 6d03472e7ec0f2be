package main

import (
	"context"
	"gift-registry/controllers"
	"gift-registry/infra"
	"gift-registry/repositories"
	"gift-registry/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository)
	userController := controllers.NewUserController(userService)

	guestRepository := repositories.NewGuestRepository(db)
	guestService := services.NewGuestService(guestRepository)
	guestController := controllers.NewGuestController(guestService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	adminController := controllers.NewAdminController(db)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	userRouter := r.Group("/api/users")
	userRouter.GET("", userController.FindAll)
	userRouter.GET("/:email", userController.FindByEmail)
	userRouter.GET("/:email/guests", userController.FindWithGuests)
	userRouter.POST("", userController.Create)
	userRouter.PUT("/:email", userController.Update)
	userRouter.DELETE("/:email", userController.Delete)

	guestRouter := r.Group("/api/guests")
	guestRouter.GET("", guestController.FindAll)
	guestRouter.GET("/user/:userEmail", guestController.FindByUser)
	guestRouter.GET("/:name/:number", guestController.FindByKey)
	guestRouter.GET("/:name/:number/items", guestController.FindWithItems)
	guestRouter.POST("", guestController.Create)
	guestRouter.PUT("/:name/:number", guestController.Update)
	guestRouter.DELETE("/:name/:number", guestController.Delete)

	itemRouter := r.Group("/api/items")
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/claimed", itemController.FindClaimed)
	itemRouter.GET("/unclaimed", itemController.FindUnclaimed)
	itemRouter.GET("/guest/:guestName/:guestNumber", itemController.FindByGuest)
	itemRouter.GET("/:itemName", itemController.FindByName)
	itemRouter.POST("", itemController.Create)
	itemRouter.PUT("/:itemName", itemController.Update)
	itemRouter.POST("/:itemName/claim", itemController.Claim)
	itemRouter.POST("/:itemName/unclaim", itemController.Unclaim)
	itemRouter.DELETE("/:itemName", itemController.Delete)

	adminRouter := r.Group("/api/admin")
	adminRouter.GET("/database", adminController.CheckDatabase)

	return r
}

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	// スキーマ作成に失敗した場合は起動しない
	if err := infra.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
