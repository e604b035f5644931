package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все REST API маршруты с авторизацией
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
		auth.GET("/profile", authMiddleware.WithAuthCheck(), h.AuthHandler.GetUserProfile)
	}

	// ============ Сотрудники — только ADMIN и MANAGER ============
	employees := api.Group("/employees")
	employees.Use(authMiddleware.WithAuthCheck(role.Admin, role.Manager))
	{
		employees.GET("", h.GetEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
		employees.POST("/:id/photo", h.UploadEmployeePhoto)
	}

	// ============ Типы смен ============
	shiftTypes := api.Group("/shifttypes")
	{
		// Чтение доступно любому аутентифицированному пользователю
		shiftTypes.GET("", authMiddleware.WithAuthCheck(), h.GetShiftTypes)

		// Изменение — только ADMIN и MANAGER
		shiftTypes.POST("", authMiddleware.WithAuthCheck(role.Admin, role.Manager), h.CreateShiftType)
		shiftTypes.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin, role.Manager), h.UpdateShiftType)
		shiftTypes.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin, role.Manager), h.DeleteShiftType)
	}

	// Liveness эндпоинт для проверки
	router.GET("/", h.Root)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
