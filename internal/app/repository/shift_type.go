package repository

import (
	"backend/internal/app/ds"
)

// Методы для типов смен

func (r *Repository) GetAllShiftTypes() ([]ds.ShiftType, error) {
	var shiftTypes []ds.ShiftType
	err := r.db.Order("id").Find(&shiftTypes).Error
	if err != nil {
		return nil, err
	}
	return shiftTypes, nil
}

func (r *Repository) GetShiftTypeByID(id uint) (*ds.ShiftType, error) {
	var shiftType ds.ShiftType
	err := r.db.First(&shiftType, id).Error
	if err != nil {
		return nil, err
	}
	return &shiftType, nil
}

func (r *Repository) CreateShiftType(shiftType *ds.ShiftType) error {
	return r.db.Create(shiftType).Error
}

func (r *Repository) UpdateShiftType(id uint, updates map[string]interface{}) (*ds.ShiftType, error) {
	var shiftType ds.ShiftType
	err := r.db.First(&shiftType, id).Error
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err = r.db.Model(&shiftType).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return &shiftType, nil
}

func (r *Repository) DeleteShiftType(id uint) error {
	shiftType, err := r.GetShiftTypeByID(id)
	if err != nil {
		return err
	}
	return r.db.Delete(shiftType).Error
}
