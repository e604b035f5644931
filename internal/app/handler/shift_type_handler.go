package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ============ ДОМЕН ТИПЫ СМЕН ============

// GetShiftTypes получает список типов смен
// @Summary Получение списка типов смен
// @Description Доступно любому аутентифицированному пользователю
// @Tags ShiftTypes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.ShiftType
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/shifttypes [get]
func (h *Handler) GetShiftTypes(c *gin.Context) {
	shiftTypes, err := h.Repository.GetAllShiftTypes()
	if err != nil {
		logrus.Error("Error getting shift types: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, shiftTypes)
}

// CreateShiftType создает новый тип смены
// @Summary Создание типа смены
// @Description Создает тип смены (только ADMIN/MANAGER)
// @Tags ShiftTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateShiftTypeRequest true "Данные типа смены"
// @Success 201 {object} ds.ShiftType
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/shifttypes [post]
func (h *Handler) CreateShiftType(c *gin.Context) {
	var request dto.CreateShiftTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Name, startTime, and endTime are required")
		return
	}

	shiftType := ds.ShiftType{
		Name:      request.Name,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
	}

	if err := h.Repository.CreateShiftType(&shiftType); err != nil {
		logrus.Error("Error creating shift type: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, shiftType)
}

// UpdateShiftType обновляет тип смены
// @Summary Обновление типа смены
// @Description Обновляет название и время смены (только ADMIN/MANAGER)
// @Tags ShiftTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID типа смены"
// @Param request body dto.UpdateShiftTypeRequest true "Новые данные"
// @Success 200 {object} ds.ShiftType
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/shifttypes/{id} [put]
func (h *Handler) UpdateShiftType(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid shift type ID")
		return
	}

	var request dto.UpdateShiftTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.StartTime != nil {
		updates["start_time"] = *request.StartTime
	}
	if request.EndTime != nil {
		updates["end_time"] = *request.EndTime
	}

	shiftType, err := h.Repository.UpdateShiftType(uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "ShiftType not found")
			return
		}
		logrus.Error("Error updating shift type: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, shiftType)
}

// DeleteShiftType удаляет тип смены
// @Summary Удаление типа смены
// @Description Удаляет тип смены (только ADMIN/MANAGER)
// @Tags ShiftTypes
// @Security BearerAuth
// @Param id path int true "ID типа смены"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/shifttypes/{id} [delete]
func (h *Handler) DeleteShiftType(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid shift type ID")
		return
	}

	if err := h.Repository.DeleteShiftType(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "ShiftType not found")
			return
		}
		logrus.Error("Error deleting shift type: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.Status(http.StatusNoContent)
}
