package repository

import (
	"backend/internal/app/ds"
	"backend/internal/app/role"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.Preload("Employee").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUserWithEmployee создаёт пользователя вместе с записью сотрудника.
// GORM выполняет вложенный insert одной транзакцией, поэтому либо появятся
// обе записи, либо ни одной.
func (r *Repository) CreateUserWithEmployee(email, hashedPassword string, userRole role.Role, employee ds.Employee) (*ds.User, error) {
	user := ds.User{
		Email:    email,
		Password: hashedPassword,
		Role:     userRole,
		Employee: &employee,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}
