package entity

// Permisos (capabilities) conocidos.
const (
	PermProfileReadOwn  = "profile:read:own"
	PermProfileWriteOwn = "profile:write:own"
	PermSelectRole      = "onboarding:select_role"
	PermAthletesRead    = "athletes:read"
	PermRankingsRead    = "rankings:read"
	PermMessagesRead    = "messages:read"
	PermMessagesSend    = "messages:send"
	PermUsersRead       = "users:read"
	PermUsersWrite      = "users:write"
	PermAthletesRate    = "athletes:rate"
	PermAdminAccess     = "admin:access"
)

var rolePermissions = map[Role][]string{
	RoleUser: {
		PermProfileReadOwn,
		PermSelectRole,
	},
	RoleAthlete: {
		PermProfileReadOwn,
		PermProfileWriteOwn,
		PermRankingsRead,
		PermMessagesRead,
		PermMessagesSend,
	},
	RoleRecruiter: {
		PermProfileReadOwn,
		PermProfileWriteOwn,
		PermAthletesRead,
		PermRankingsRead,
		PermMessagesRead,
		PermMessagesSend,
	},
	RoleAdmin: {
		PermAdminAccess,
		PermUsersRead,
		PermUsersWrite,
		PermAthletesRead,
		PermAthletesRate,
		PermRankingsRead,
		PermMessagesRead,
		PermMessagesSend,
	},
}

// PermissionsFor devuelve una copia del set estático de permisos del rol.
// Un rol desconocido no tiene permisos.
func PermissionsFor(r Role) []string {
	perms := rolePermissions[r]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}
