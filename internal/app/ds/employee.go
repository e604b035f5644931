package ds

// 2. Таблица сотрудников (связь один-к-одному с User)
type Employee struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	FirstName      string  `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName       string  `gorm:"type:varchar(50);not null" json:"lastName"`
	Position       string  `gorm:"type:varchar(100);not null" json:"position"`
	EmploymentType string  `gorm:"type:varchar(20);not null" json:"employmentType"` // FULL_TIME, PART_TIME, CONTRACT
	PhotoURL       *string `gorm:"type:varchar(255)" json:"photoUrl,omitempty"`     // Nullable
	UserID         uint    `gorm:"not null;uniqueIndex" json:"userId"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
