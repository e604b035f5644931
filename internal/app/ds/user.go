package ds

import "backend/internal/app/role"

// 1. Таблица пользователей
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Email    string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"`
	Role     role.Role `gorm:"type:varchar(20);default:'EMPLOYEE';not null" json:"role"`

	Employee *Employee `gorm:"foreignKey:UserID" json:"employee,omitempty"`
}
