// Package access concentra la resolución de sesión, el gate de rutas por rol
// y el mapeo rol → ruta. Todo aquí es puro: la E/S ocurre en los llamadores.
package access

import (
	"encoding/json"
	"strings"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// ResolveSession convierte la salida cruda del proveedor de autenticación en una Session.
//
// storedRole es el rol guardado en la base de datos de la aplicación; solo se usa
// cuando la metadata del proveedor no trae rol. Si ningún candidato es un rol
// conocido se usa USER. Los permisos vienen de la metadata si es una lista
// no vacía de strings; si no, de la tabla estática del rol resuelto.
func ResolveSession(raw *entity.AuthUser, storedRole string) *entity.Session {
	if raw == nil || raw.ID == "" {
		return nil
	}

	candidate, ok := metadataRole(raw.Metadata)
	if !ok {
		candidate = storedRole
	}
	role := entity.RoleOrDefault(candidate)

	perms, ok := metadataPermissions(raw.Metadata)
	if !ok {
		perms = entity.PermissionsFor(role)
	}

	return &entity.Session{
		ID:          raw.ID,
		Name:        raw.Name,
		Email:       raw.Email,
		Role:        role,
		Permissions: perms,
		IsLoggedIn:  true,
	}
}

// NeedsStoredRole indica si ResolveSession necesitará el rol guardado en DB,
// para que el llamador evite la consulta cuando la metadata ya lo trae.
func NeedsStoredRole(raw *entity.AuthUser) bool {
	if raw == nil {
		return false
	}
	_, ok := metadataRole(raw.Metadata)
	return !ok
}

// metadataRole informa si la metadata trae rol. Cuenta como ausente solo un valor
// vacío: nil, "", false o 0; en ese caso decide el rol de DB. Cualquier otro valor
// está presente aunque no sea un rol (un número, "  ", "coach") y termina en USER,
// sin caer al rol de DB.
func metadataRole(md entity.AuthMetadata) (string, bool) {
	v, found := md[entity.MetadataRole]
	if !found || isEmptyValue(v) {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

func isEmptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	return false
}

func metadataPermissions(md entity.AuthMetadata) ([]string, bool) {
	v, found := md[entity.MetadataPermissions]
	if !found {
		return nil, false
	}
	var raw []string
	switch list := v.(type) {
	case []string:
		raw = list
	case []any:
		raw = make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			raw = append(raw, s)
		}
	default:
		return nil, false
	}

	seen := make(map[string]struct{}, len(raw))
	perms := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		perms = append(perms, p)
	}
	if len(perms) == 0 {
		return nil, false
	}
	return perms, true
}
