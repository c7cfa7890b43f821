package entity

// AuthMetadata metadata libre que acompaña al usuario del proveedor de autenticación.
// Claves conocidas: "role" (string) y "permissions" (lista de strings).
type AuthMetadata map[string]any

// Claves de AuthMetadata.
const (
	MetadataRole        = "role"
	MetadataPermissions = "permissions"
)

// AuthUser salida cruda del proveedor de autenticación ("usuario actual").
type AuthUser struct {
	ID       string
	Name     string
	Email    string
	Metadata AuthMetadata
}

// Session vista normalizada del usuario autenticado para una petición. No se persiste.
type Session struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
	IsLoggedIn  bool     `json:"isLoggedIn"`
}

// Can informa si la sesión tiene el permiso indicado.
func (s *Session) Can(permission string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// RoleMetadata metadata que se publica en el proveedor para el rol dado.
func RoleMetadata(r Role) AuthMetadata {
	return AuthMetadata{MetadataRole: string(r)}
}
