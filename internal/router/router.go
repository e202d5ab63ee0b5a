package router

import (
	"github.com/hive-social/hive-backend/internal/handlers"
	"github.com/hive-social/hive-backend/internal/middleware"
	"github.com/hive-social/hive-backend/internal/models"
	"github.com/hive-social/hive-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Hashtag{},
		&models.Post{},
		&models.Comment{},
		&models.LikedUser{},
		&models.FollowedHashtag{},
		&models.LikedPost{},
		&models.FollowedUser{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate models: %v", err)
	}
	logrus.Info("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	hashtagRepo := repositories.NewPostgresHashtagRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likedUserRepo := repositories.NewPostgresLikedUserRepository(db)
	followedHashtagRepo := repositories.NewPostgresFollowedHashtagRepository(db)
	likedPostRepo := repositories.NewPostgresLikedPostRepository(db)
	followedUserRepo := repositories.NewPostgresFollowedUserRepository(db)

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(e)
	logrus.Info("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	logrus.Info("JWT authentication middleware applied to /api/v1 group.")

	userHandler := handlers.NewUserHandler(userRepo, postRepo, likedUserRepo, followedHashtagRepo, likedPostRepo)
	userHandler.RegisterUserRoutes(api)
	logrus.Info("User routes configured.")

	hashtagHandler := handlers.NewHashtagHandler(hashtagRepo)
	hashtagHandler.RegisterHashtagRoutes(api)
	logrus.Info("Hashtag routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, likedPostRepo)
	postHandler.RegisterPostRoutes(api)
	logrus.Info("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	logrus.Info("Comment routes configured.")

	likedUserHandler := handlers.NewLikedUserHandler(likedUserRepo, userRepo)
	likedUserHandler.RegisterLikedUserRoutes(api)
	logrus.Info("Liked user routes configured.")

	followedHashtagHandler := handlers.NewFollowedHashtagHandler(followedHashtagRepo, hashtagRepo, userRepo)
	followedHashtagHandler.RegisterFollowedHashtagRoutes(api)
	logrus.Info("Followed hashtag routes configured.")

	likedPostHandler := handlers.NewLikedPostHandler(likedPostRepo)
	likedPostHandler.RegisterLikedPostRoutes(api)
	logrus.Info("Liked post routes configured.")

	followedUserHandler := handlers.NewFollowedUserHandler(followedUserRepo, userRepo)
	followedUserHandler.RegisterFollowedUserRoutes(api)
	logrus.Info("Followed user routes configured.")

	logrus.Info("All routes configured.")
}
