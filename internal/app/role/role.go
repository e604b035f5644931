package role

// Роли пользователей в системе
type Role string

const (
	Employee Role = "EMPLOYEE"
	Manager  Role = "MANAGER"
	Admin    Role = "ADMIN"
)

// IsValid проверяет, что роль входит в список известных
func (r Role) IsValid() bool {
	switch r {
	case Employee, Manager, Admin:
		return true
	}
	return false
}
