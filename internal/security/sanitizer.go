// Package security limpia el texto libre que los usuarios envían (bios, mensajes)
// antes de persistirlo.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextSanitizer elimina todo HTML del texto libre. Es seguro para uso concurrente.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer construye el sanitizador con la política estricta de bluemonday
// (ninguna etiqueta permitida).
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Plain devuelve s sin etiquetas HTML, con entidades decodificadas y sin espacios en los extremos.
func (s *TextSanitizer) Plain(in string) string {
	if in == "" {
		return ""
	}
	out := s.policy.Sanitize(in)
	// bluemonday escapa el texto; lo guardamos plano y se escapa al renderizar.
	return strings.TrimSpace(html.UnescapeString(out))
}

// Name normaliza nombres propios (colegio, ciudad, organización): texto plano,
// espacios colapsados y capitalización de título.
// cases.Caser guarda estado: se crea uno por llamada.
func (s *TextSanitizer) Name(in string) string {
	plain := strings.Join(strings.Fields(s.Plain(in)), " ")
	if plain == "" {
		return ""
	}
	caser := cases.Title(language.Und)
	return caser.String(strings.ToLower(plain))
}
