package dto

import "github.com/jhoicas/scoutline-api/internal/domain/entity"

// SelectRoleHintRequest rol elegido antes de tener perfil (cookie selected_role).
type SelectRoleHintRequest struct {
	Role string `json:"role" form:"role" validate:"required"`
}

// CreateAthleteRequest alta del perfil de atleta (selección de rol ATHLETE).
type CreateAthleteRequest struct {
	Sport          string `json:"sport" form:"sport" validate:"required,max=80"`
	Position       string `json:"position" form:"position" validate:"omitempty,max=80"`
	GraduationYear int    `json:"graduation_year" form:"graduation_year" validate:"required,min=1990,max=2100"`
	School         string `json:"school" form:"school" validate:"omitempty,max=200"`
	City           string `json:"city" form:"city" validate:"omitempty,max=120"`
	Region         string `json:"region" form:"region" validate:"omitempty,max=120"`
	HeightCm       int    `json:"height_cm" form:"height_cm" validate:"omitempty,min=100,max=250"`
	WeightKg       int    `json:"weight_kg" form:"weight_kg" validate:"omitempty,min=30,max=250"`
	Bio            string `json:"bio" form:"bio" validate:"omitempty,max=2000"`
	HighlightURL   string `json:"highlight_url" form:"highlight_url" validate:"omitempty,http_url,max=500"`
}

// CreateRecruiterRequest alta del perfil de reclutador (selección de rol RECRUITER).
type CreateRecruiterRequest struct {
	Organization string `json:"organization" form:"organization" validate:"required,max=200"`
	Title        string `json:"title" form:"title" validate:"omitempty,max=120"`
	Sport        string `json:"sport" form:"sport" validate:"required,max=80"`
	Division     string `json:"division" form:"division" validate:"omitempty,max=80"`
	Bio          string `json:"bio" form:"bio" validate:"omitempty,max=2000"`
}

// RoleSelectionResponse resultado de la selección de rol: token renovado y destino.
type RoleSelectionResponse struct {
	Role       entity.Role `json:"role"`
	RedirectTo string      `json:"redirect_to"`
	Token      string      `json:"token,omitempty"`
	Profile    any         `json:"profile"`
}

// OnboardingState estado conceptual de alta del usuario.
type OnboardingState string

// Estados de OnboardingState.
const (
	StateUnassigned      OnboardingState = "UNASSIGNED"
	StateRoleChosen      OnboardingState = "ROLE_CHOSEN"
	StateProfileComplete OnboardingState = "PROFILE_COMPLETE"
)

// OnboardingView modelo de la página /onboarding.
type OnboardingView struct {
	State        OnboardingState `json:"state"`
	Form         string          `json:"form"` // "athlete", "recruiter" o "" (elegir rol)
	SelectedRole string          `json:"selected_role,omitempty"`
}

// DashboardView modelo de la página /dashboard/<rol>.
type DashboardView struct {
	Session        *entity.Session `json:"session"`
	State          OnboardingState `json:"state"`
	OnboardingPath string          `json:"onboarding_path,omitempty"`
	CanSelectRole  bool            `json:"can_select_role"`
}
