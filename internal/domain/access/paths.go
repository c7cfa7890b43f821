package access

import (
	"path"
	"strings"

	"github.com/jhoicas/scoutline-api/internal/domain/entity"
)

// Rutas de página conocidas.
const (
	HomePath       = "/"
	DashboardPath  = "/dashboard"
	AdminPath      = "/admin"
	OnboardingPath = "/onboarding"
)

var protectedPrefixes = []string{DashboardPath, AdminPath, OnboardingPath}

// RoleHomePath devuelve el dashboard del rol: /dashboard/<rol en minúsculas>.
// Es el único mapeo rol → ruta; middleware, páginas y handlers lo reutilizan.
func RoleHomePath(r entity.Role) string {
	return DashboardPath + "/" + entity.RoleOrDefault(string(r)).Segment()
}

// OnboardingPathFor devuelve el formulario de alta de perfil del rol.
// Para roles sin perfil de dominio devuelve la página de selección de rol.
func OnboardingPathFor(r entity.Role) string {
	if !r.HasProfile() {
		return OnboardingPath
	}
	return OnboardingPath + "/" + r.Segment()
}

// IsProtected informa si la ruta cae bajo /dashboard, /admin u /onboarding.
func IsProtected(p string) bool {
	p = cleanPath(p)
	for _, prefix := range protectedPrefixes {
		if underPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// IsDashboard informa si la ruta cae bajo /dashboard.
func IsDashboard(p string) bool {
	return underPrefix(cleanPath(p), DashboardPath)
}

// cleanPath normaliza la ruta para compararla con los prefijos. Pasa a minúsculas
// porque el router de Fiber resuelve rutas sin distinguir mayúsculas: /ADMIN llega
// al mismo handler que /admin y debe recibir la misma decisión.
func cleanPath(p string) string {
	if p == "" {
		return HomePath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(strings.ToLower(p))
}

// underPrefix es true para prefix y prefix/..., pero no para prefix-otro.
func underPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// dashboardSegment devuelve el primer segmento tras /dashboard, si existe.
func dashboardSegment(p string) string {
	if !strings.HasPrefix(p, DashboardPath+"/") {
		return ""
	}
	rest := strings.TrimPrefix(p, DashboardPath+"/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
