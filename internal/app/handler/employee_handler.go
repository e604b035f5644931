package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ============ ДОМЕН СОТРУДНИКИ ============

// GetEmployees получает список сотрудников
// @Summary Получение списка сотрудников
// @Description Возвращает всех сотрудников вместе с email и ролью владеющего пользователя
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EmployeeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/employees [get]
func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.Repository.GetAllEmployees()
	if err != nil {
		logrus.Error("Error getting employees: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	response := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		response[i] = employeeToDTO(&employees[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetEmployee получает одного сотрудника
// @Summary Получение сотрудника по ID
// @Description Возвращает сотрудника вместе с данными владеющего пользователя
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/employees/{id} [get]
func (h *Handler) GetEmployee(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := h.Repository.GetEmployeeByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Employee not found")
			return
		}
		logrus.Error("Error getting employee: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, employeeToDTO(employee))
}

// UpdateEmployee обновляет данные сотрудника
// @Summary Обновление сотрудника
// @Description Обновляет имя, фамилию, должность и тип занятости
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Param request body dto.UpdateEmployeeRequest true "Новые данные"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/employees/{id} [put]
func (h *Handler) UpdateEmployee(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var request dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Обновляем только переданные поля
	updates := map[string]interface{}{}
	if request.FirstName != nil {
		updates["first_name"] = *request.FirstName
	}
	if request.LastName != nil {
		updates["last_name"] = *request.LastName
	}
	if request.Position != nil {
		updates["position"] = *request.Position
	}
	if request.EmploymentType != nil {
		updates["employment_type"] = *request.EmploymentType
	}

	employee, err := h.Repository.UpdateEmployee(uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Employee not found")
			return
		}
		logrus.Error("Error updating employee: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, employeeToDTO(employee))
}

// DeleteEmployee удаляет сотрудника вместе с его пользователем
// @Summary Удаление сотрудника
// @Description Удаляет сотрудника и владеющего пользователя одной транзакцией
// @Tags Employees
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/employees/{id} [delete]
func (h *Handler) DeleteEmployee(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := h.Repository.GetEmployeeByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Employee not found")
			return
		}
		logrus.Error("Error getting employee: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	// Пользователь и сотрудник удаляются только вместе
	if err := h.Repository.DeleteEmployeeWithUser(employee); err != nil {
		logrus.Error("Error deleting employee: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadEmployeePhoto загружает фотографию сотрудника
// @Summary Загрузка фотографии сотрудника
// @Description Сохраняет изображение в MinIO и привязывает его к сотруднику
// @Tags Employees
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Param image formData file true "Изображение"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/employees/{id}/photo [post]
func (h *Handler) UploadEmployeePhoto(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "File storage is not available")
		return
	}

	employee, err := h.Repository.GetEmployeeByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Employee not found")
			return
		}
		logrus.Error("Error getting employee: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.Error("Error opening uploaded file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		logrus.Error("Error reading uploaded file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	// Старую фотографию удаляем, чтобы не копить мусор в bucket
	if employee.PhotoURL != nil && *employee.PhotoURL != "" {
		if err := h.MinIOClient.DeleteFile(*employee.PhotoURL); err != nil {
			logrus.Warn("Error deleting old photo: ", err)
		}
	}

	objectName, err := h.MinIOClient.UploadFile(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading photo: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.Repository.SetEmployeePhoto(uint(id), objectName); err != nil {
		logrus.Error("Error saving photo reference: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	url, err := h.MinIOClient.GetFileURL(objectName)
	if err != nil {
		logrus.Error("Error generating photo URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photoUrl": objectName,
		"url":      url,
	})
}
