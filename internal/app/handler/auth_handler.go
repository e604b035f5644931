package handler

import (
	"errors"
	"net/http"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/redis"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Стоимость bcrypt при хешировании паролей
const bcryptCost = 10

type AuthHandler struct {
	Repository  Store
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r Store, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// generateToken подписывает JWT с id и ролью пользователя
func (h *AuthHandler) generateToken(userID uint, userRole role.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "scheduling-app",
		},
		UserID: userID,
		Role:   userRole,
	})

	return token.SignedString([]byte(h.Config.JWT.Secret))
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, dto.ErrorResponse{
		Message: message,
	})
}

// RegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создает пользователя вместе с записью сотрудника
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "All fields are required")
		return
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcryptCost)
	if err != nil {
		logrus.Error("Error hashing password: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	// Определяем роль (если не указана, по умолчанию EMPLOYEE)
	userRole := role.Role(request.Role)
	if userRole == "" {
		userRole = role.Employee
	}
	if !userRole.IsValid() {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid role")
		return
	}

	employee := ds.Employee{
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Position:       request.Position,
		EmploymentType: request.EmploymentType,
	}

	// Пользователь и сотрудник создаются одним вложенным insert
	user, err := h.Repository.CreateUserWithEmployee(request.Email, string(hashedPassword), userRole, employee)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			h.errorResponse(ctx, http.StatusConflict, "Email already in use")
			return
		}
		logrus.Error("Error creating user: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	response := dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.Employee != nil {
		emp := employeeToDTO(user.Employee)
		response.Employee = &emp
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    response,
	})
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Не раскрываем, что именно не совпало: email и пароль дают один ответ
	user, err := h.Repository.GetUserByEmail(request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logrus.Error("Error getting user: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, err := h.generateToken(user.ID, user.Role)
	if err != nil {
		logrus.Error("Error signing token: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:  accessToken,
		Role:   user.Role,
		UserID: user.ID,
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Добавляет текущий токен в blacklist до истечения его срока
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	// Получение токена из заголовка
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authorization header missing")
		return
	}

	// Удаление префикса "Bearer "
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Парсинг токена для получения TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Secret), nil
	})
	if err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "Invalid token")
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "Invalid token claims")
		return
	}

	// Вычисление TTL до истечения токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 && h.RedisClient != nil {
		// Добавление токена в blacklist
		err = h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
		if err != nil {
			logrus.Error("Error writing token to blacklist: ", err)
			h.errorResponse(ctx, http.StatusInternalServerError, "Server error")
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetUserProfile получение профиля пользователя
// @Summary Получение профиля пользователя
// @Description Возвращает информацию о текущем пользователе и его сотруднике
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, _, ok := getUserFromContext(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		logrus.Error("Error getting user: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	response := dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.Employee != nil {
		emp := employeeToDTO(user.Employee)
		response.Employee = &emp
	}

	ctx.JSON(http.StatusOK, response)
}
