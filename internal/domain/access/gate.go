package access

import "github.com/jhoicas/scoutline-api/internal/domain/entity"

// Decision resultado del gate de rutas.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Motivos de una decisión (para logs y métricas).
const (
	ReasonAllowed         = "allowed"
	ReasonUnauthenticated = "unauthenticated"
	ReasonAdminOnly       = "admin_only"
	ReasonWrongRole       = "wrong_role"
)

func allow() Decision { return Decision{Allow: true} }

func deny(to string) Decision { return Decision{RedirectTo: to} }

// AuthorizeRoute decide si la sesión (posiblemente nil) puede acceder a requestedPath.
// Las reglas se evalúan en orden fijo y gana la primera denegación:
//  1. sin sesión en ruta protegida → "/"
//  2. /admin con rol distinto de ADMIN → "/"
//  3. /dashboard/<rol> distinto del rol de la sesión → dashboard del rol real
func AuthorizeRoute(session *entity.Session, requestedPath string) Decision {
	d, _ := Evaluate(session, requestedPath)
	return d
}

// Evaluate es AuthorizeRoute devolviendo además el motivo.
func Evaluate(session *entity.Session, requestedPath string) (Decision, string) {
	p := cleanPath(requestedPath)

	if session == nil {
		if IsProtected(p) {
			return deny(HomePath), ReasonUnauthenticated
		}
		return allow(), ReasonAllowed
	}

	if underPrefix(p, AdminPath) && session.Role != entity.RoleAdmin {
		return deny(HomePath), ReasonAdminOnly
	}

	if seg := dashboardSegment(p); seg != "" {
		if target, ok := entity.ParseRole(seg); ok && target != session.Role {
			return deny(RoleHomePath(session.Role)), ReasonWrongRole
		}
	}

	return allow(), ReasonAllowed
}
