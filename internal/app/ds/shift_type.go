package ds

// 3. Таблица типов смен (справочник, без связи с пользователями)
type ShiftType struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	StartTime string `gorm:"type:varchar(20);not null" json:"startTime"`
	EndTime   string `gorm:"type:varchar(20);not null" json:"endTime"`
}
