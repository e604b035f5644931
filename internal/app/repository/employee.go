package repository

import (
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для сотрудников

// Получить всех сотрудников вместе с владеющими пользователями
func (r *Repository) GetAllEmployees() ([]ds.Employee, error) {
	var employees []ds.Employee
	err := r.db.Preload("User").Order("id").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// Получить сотрудника по ID
func (r *Repository) GetEmployeeByID(id uint) (*ds.Employee, error) {
	var employee ds.Employee
	err := r.db.Preload("User").First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Обновить поля сотрудника; возвращает обновлённую запись
func (r *Repository) UpdateEmployee(id uint, updates map[string]interface{}) (*ds.Employee, error) {
	var employee ds.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err = r.db.Model(&employee).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetEmployeeByID(id)
}

// DeleteEmployeeWithUser удаляет сотрудника и его пользователя одной
// транзакцией. Каскадного удаления через связь один-к-одному нет, поэтому
// оба delete обязаны пройти вместе — при любой ошибке транзакция откатывается.
func (r *Repository) DeleteEmployeeWithUser(employee *ds.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ds.Employee{}, employee.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ds.User{}, employee.UserID).Error; err != nil {
			return err
		}
		return nil
	})
}

// Сохранить имя файла фотографии сотрудника
func (r *Repository) SetEmployeePhoto(id uint, objectName string) error {
	return r.db.Model(&ds.Employee{}).Where("id = ?", id).Update("photo_url", objectName).Error
}
