package entity

import (
	"strings"
	"time"
)

// Role rol de aplicación de un usuario. Gobierna el acceso a rutas y el set de permisos.
type Role string

// Roles válidos para User.
const (
	RoleUser      Role = "USER"
	RoleAthlete   Role = "ATHLETE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Roles devuelve los cuatro roles conocidos en orden estable.
func Roles() []Role {
	return []Role{RoleUser, RoleAthlete, RoleRecruiter, RoleAdmin}
}

// ParseRole normaliza s (sin distinguir mayúsculas) a uno de los roles conocidos.
// ok es false si s no nombra ningún rol.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleUser, RoleAthlete, RoleRecruiter, RoleAdmin:
		return r, true
	}
	return "", false
}

// RoleOrDefault es ParseRole con USER como valor por defecto.
func RoleOrDefault(s string) Role {
	if r, ok := ParseRole(s); ok {
		return r
	}
	return RoleUser
}

// HasProfile indica si el rol exige un perfil de dominio (Athlete o Recruiter).
func (r Role) HasProfile() bool {
	return r == RoleAthlete || r == RoleRecruiter
}

// Segment es el nombre del rol en minúsculas, tal como aparece en las rutas (/dashboard/athlete).
func (r Role) Segment() string {
	return strings.ToLower(string(r))
}

func (r Role) String() string { return string(r) }

// User identidad registrada. El proveedor de auth es el dueño; la tabla users es un espejo consultable.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Metadata     AuthMetadata // copia de la metadata publicada en el token del proveedor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
