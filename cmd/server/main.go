package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/todoplanner/todo-planner-api/internal/auth"
	"github.com/todoplanner/todo-planner-api/internal/config"
	"github.com/todoplanner/todo-planner-api/internal/database"
	"github.com/todoplanner/todo-planner-api/internal/handlers"
	"github.com/todoplanner/todo-planner-api/internal/middleware"
	"github.com/todoplanner/todo-planner-api/internal/repository"
	"github.com/todoplanner/todo-planner-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.Metrics())

	// Wire repositories, services, and handlers; configuration is
	// injected once here and nowhere else.
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)
	userHandler := handlers.NewUserHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Root and health endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"response": "This is the root end point for todo app",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Todo Planner API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Token bootstrap check
	r.GET("/verifyToken", middleware.RequireAuth(tokens, authService, "error"), userHandler.VerifyToken)

	// User routes
	user := r.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
		user.GET("/getUserDetails", middleware.RequireAuth(tokens, authService, "getUserDetailsMessage"), userHandler.GetUserDetails)
		user.PUT("/updateUserDetails", middleware.RequireAuth(tokens, authService, "updateUserMessage"), userHandler.UpdateUserDetails)
		user.DELETE("/deleteUser", middleware.RequireAuth(tokens, authService, "deleteUserMessage"), userHandler.DeleteUser)
	}

	// Task routes (all protected)
	task := r.Group("/task")
	{
		task.GET("/getAllTask", middleware.RequireAuth(tokens, authService, "getAllTaskMessage"), taskHandler.GetAllTasks)
		task.GET("/getAllTodayTasks", middleware.RequireAuth(tokens, authService, "getTodayTasksMessage"), taskHandler.GetAllTodayTasks)
		task.POST("/create", middleware.RequireAuth(tokens, authService, "createTaskMessage"), taskHandler.CreateTask)
		task.PUT("/updateTask/:taskId", middleware.RequireAuth(tokens, authService, "updateTaskMessage"), taskHandler.UpdateTask)
		task.DELETE("/deleteTask/:taskId", middleware.RequireAuth(tokens, authService, "deleteTaskMessage"), taskHandler.DeleteTask)
		task.GET("/getTaskCounts", middleware.RequireAuth(tokens, authService, "getTaskCountsMessage"), taskHandler.GetTaskCounts)
		task.GET("/getTaskPriorityCounts", middleware.RequireAuth(tokens, authService, "getTaskPriorityCountsMessage"), taskHandler.GetTaskPriorityCounts)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
