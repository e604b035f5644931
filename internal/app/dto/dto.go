package dto

import "backend/internal/app/role"

// ============ Общие структуры ============

type ErrorResponse struct {
	Message string `json:"message"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Position       string `json:"position" binding:"required"`
	EmploymentType string `json:"employmentType" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT"`
	Role           string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token  string    `json:"token"`
	Role   role.Role `json:"role"`
	UserID uint      `json:"userId"`
}

// ============ Пользователи ============

type UserResponse struct {
	ID       uint              `json:"id"`
	Email    string            `json:"email"`
	Role     role.Role         `json:"role"`
	Employee *EmployeeResponse `json:"employee,omitempty"`
}

// Данные владеющего пользователя в выдаче сотрудника (без пароля)
type EmployeeUserResponse struct {
	Email string    `json:"email"`
	Role  role.Role `json:"role"`
}

// ============ Сотрудники ============

type EmployeeResponse struct {
	ID             uint                  `json:"id"`
	FirstName      string                `json:"firstName"`
	LastName       string                `json:"lastName"`
	Position       string                `json:"position"`
	EmploymentType string                `json:"employmentType"`
	PhotoURL       *string               `json:"photoUrl,omitempty"`
	UserID         uint                  `json:"userId"`
	User           *EmployeeUserResponse `json:"user,omitempty"`
}

type UpdateEmployeeRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Position       *string `json:"position"`
	EmploymentType *string `json:"employmentType" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT"`
}

// ============ Типы смен ============

type CreateShiftTypeRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type UpdateShiftTypeRequest struct {
	Name      *string `json:"name"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}
