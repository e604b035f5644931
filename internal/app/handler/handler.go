package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Store описывает операции хранилища, которые используют обработчики.
// Реализуется repository.Repository.
type Store interface {
	GetUserByID(id uint) (*ds.User, error)
	GetUserByEmail(email string) (*ds.User, error)
	CreateUserWithEmployee(email, hashedPassword string, userRole role.Role, employee ds.Employee) (*ds.User, error)

	GetAllEmployees() ([]ds.Employee, error)
	GetEmployeeByID(id uint) (*ds.Employee, error)
	UpdateEmployee(id uint, updates map[string]interface{}) (*ds.Employee, error)
	DeleteEmployeeWithUser(employee *ds.Employee) error
	SetEmployeePhoto(id uint, objectName string) error

	GetAllShiftTypes() ([]ds.ShiftType, error)
	GetShiftTypeByID(id uint) (*ds.ShiftType, error)
	CreateShiftType(shiftType *ds.ShiftType) error
	UpdateShiftType(id uint, updates map[string]interface{}) (*ds.ShiftType, error)
	DeleteShiftType(id uint) error
}

// Handler содержит обработчики для REST API
type Handler struct {
	Repository  Store
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewHandler(r Store, minioClient *storage.MinIOClient, authHandler *AuthHandler) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// errorResponse отправляет клиенту ошибку в формате {"message": ...}
func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Message: message,
	})
}

// Преобразование модели сотрудника в DTO (пароль владельца не выдаётся)
func employeeToDTO(e *ds.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Position:       e.Position,
		EmploymentType: e.EmploymentType,
		PhotoURL:       e.PhotoURL,
		UserID:         e.UserID,
	}
	if e.User != nil {
		resp.User = &dto.EmployeeUserResponse{
			Email: e.User.Email,
			Role:  e.User.Role,
		}
	}
	return resp
}

// Получение текущего пользователя из контекста (установлен middleware)
func getUserFromContext(c *gin.Context) (uint, role.Role, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, "", false
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, false
	}

	return id, r, true
}

// Root проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает строку, подтверждающую работу сервера
// @Tags Health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Scheduling App API is running...")
}
