package main

import (
	"net/http"
	"os"

	"socialboard/config"
	"socialboard/handlers"
	"socialboard/helper"
	"socialboard/logger"
	"socialboard/middleware"
	"socialboard/repositories"
	"socialboard/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; containers set real env vars.
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := config.InitDB()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	dislikeRepo := repositories.NewDislikeRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, log)
	articleService := services.NewArticleService(articleRepo, commentRepo, dislikeRepo, log)
	commentService := services.NewCommentService(commentRepo, articleRepo, dislikeRepo, log)
	dislikeService := services.NewDislikeService(dislikeRepo, articleRepo, commentRepo, log)

	// Handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	dislikeHandler := handlers.NewDislikeHandler(dislikeService, httpHelper)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.Default())
	router.Use(middleware.Identity())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Operation names mirror the legacy query/mutation fields.
	v1 := router.Group("/api/v1")
	{
		// Queries
		v1.GET("/findUserById/:id", authHandler.FindUserByID)
		v1.GET("/getUserbyToken", authHandler.GetUserByToken)
		v1.GET("/findArticles", articleHandler.FindArticles)
		v1.GET("/findArticleById/:id", articleHandler.FindArticleByID)
		v1.GET("/findArticleByMostDisliked", articleHandler.FindArticleByMostDisliked)
		v1.GET("/getComments/:articleId", commentHandler.GetComments)
		v1.GET("/getDislikesByArticleId/:articleId", dislikeHandler.GetDislikesByArticleID)
		v1.GET("/getDislikesByCommentId/:commentId", dislikeHandler.GetDislikesByCommentID)
		v1.GET("/getDislikesByUserId/:userId", dislikeHandler.GetDislikesByUserID)

		// Mutations
		v1.POST("/createUser", authHandler.CreateUser)
		v1.POST("/signIn", authHandler.SignIn)
		v1.POST("/updateUser/:id", authHandler.UpdateUser)
		v1.POST("/createArticle", articleHandler.CreateArticle)
		v1.POST("/updateArticle/:id", articleHandler.UpdateArticle)
		v1.POST("/deleteArticle/:id", articleHandler.DeleteArticle)
		v1.POST("/addComment", commentHandler.AddComment)
		v1.POST("/updateComment/:commentId", commentHandler.UpdateComment)
		v1.POST("/deleteComment/:commentId", commentHandler.DeleteComment)
		v1.POST("/addArticleDislike", dislikeHandler.AddArticleDislike)
		v1.POST("/addCommentDislike", dislikeHandler.AddCommentDislike)
		v1.POST("/deleteArticleDislike", dislikeHandler.DeleteArticleDislike)
		v1.POST("/deleteCommentDislike", dislikeHandler.DeleteCommentDislike)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
