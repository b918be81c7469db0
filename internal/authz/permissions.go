// internal/authz/permissions.go
package authz

// Role — закрытый перечень ролей системы. Роли сравниваются как тип,
// а не как произвольные строки из запроса.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// --- СПИСОК ВСЕХ ПЕРМИШЕНОВ В СИСТЕМЕ ---

const (
	ManageCommittees    = "manage_committees"
	ManageContributions = "manage_contributions"
	ManageLandDonors    = "manage_land_donors"
	ManageSettings      = "manage_settings"
	ManageUsers         = "manage_users"
	ViewActivity        = "view_activity"
)

// rolePermissions — статичная таблица роль → права. Заполняется при
// инициализации пакета и дальше только читается, поэтому безопасна
// для конкурентного доступа без блокировок.
var rolePermissions = map[Role][]string{
	RoleAdmin: {
		ManageCommittees,
		ManageContributions,
		ManageLandDonors,
		ManageSettings,
		ManageUsers,
		ViewActivity,
	},
	RoleEditor: {
		ManageCommittees,
		ManageContributions,
		ManageLandDonors,
		ViewActivity,
	},
	RoleViewer: {
		ViewActivity,
	},
}

// IsValid сообщает, известна ли роль таблице прав.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// PermissionsOf возвращает набор прав роли. Неизвестная роль получает
// пустой набор: отказ по умолчанию, а не разрешение.
func PermissionsOf(role Role) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// RoleGrants проверяет, дает ли роль указанное право.
func RoleGrants(role Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
