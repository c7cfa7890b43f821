package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scoutline-api/internal/application/auth"
	"github.com/jhoicas/scoutline-api/internal/application/onboarding"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/identity"
	apphttp "github.com/jhoicas/scoutline-api/internal/interfaces/http"
	"github.com/jhoicas/scoutline-api/internal/metrics"
	"github.com/jhoicas/scoutline-api/internal/testutil/memstore"
	"github.com/jhoicas/scoutline-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	athleteID   = "00000000-0000-0000-0000-000000000001"
	recruiterID = "00000000-0000-0000-0000-000000000002"
	adminID     = "00000000-0000-0000-0000-000000000003"
	plainUserID = "00000000-0000-0000-0000-000000000004"

	athleteProfileID   = "10000000-0000-0000-0000-000000000001"
	recruiterProfileID = "10000000-0000-0000-0000-000000000002"
)

type testEnv struct {
	app   *fiber.App
	store *memstore.Store
	idp   *identity.JWTProvider
	reg   *prometheus.Registry
}

// envOpt ajusta las dependencias antes de montar el router.
type envOpt func(deps *apphttp.RouterDeps, store *memstore.Store)

// newTestEnv arma la app completa sobre el store en memoria con usuarios de cada rol.
// El atleta y el reclutador ya tienen perfil; plainUserID es USER.
func newTestEnv(t *testing.T, rolesPerMinute int, opts ...envOpt) *testEnv {
	t.Helper()
	store := memstore.New()
	now := time.Now()
	for id, role := range map[string]entity.Role{
		athleteID:   entity.RoleAthlete,
		recruiterID: entity.RoleRecruiter,
		adminID:     entity.RoleAdmin,
		plainUserID: entity.RoleUser,
	} {
		store.PutUser(&entity.User{ID: id, Name: "Test", Email: id + "@example.com", Role: role, Metadata: entity.RoleMetadata(role), CreatedAt: now})
	}
	ctx := context.Background()
	require.NoError(t, store.Athletes().Create(ctx, &entity.Athlete{ID: athleteProfileID, UserID: athleteID, Sport: "soccer", GraduationYear: 2027, CreatedAt: now}))
	require.NoError(t, store.Recruiters().Create(ctx, &entity.Recruiter{ID: recruiterProfileID, UserID: recruiterID, Sport: "soccer", CreatedAt: now}))

	idp := identity.NewJWTProvider(config.JWTConfig{Secret: "test-secret", Issuer: "scoutline-test", Expiration: 60})
	reg := prometheus.NewRegistry()
	rec := metrics.NewCollector(reg)
	log := zerolog.Nop()

	limiter := apphttp.NewRateLimiter(time.Minute, log)
	t.Cleanup(limiter.Stop)

	app := fiber.New()
	deps := apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(store.Users(), idp),
		Sessions:      auth.NewSessionService(idp, store.Users(), rec, log),
		Onboarding:    onboarding.NewService(store.Athletes(), store.Recruiters(), rec, log),
		RoleSelection: onboarding.NewRoleSelectionUseCase(store, idp, nil, rec, log),
		AthleteUC:     usecase.NewAthleteUseCase(store.Athletes(), store.Recruiters(), nil),
		RecruiterUC:   usecase.NewRecruiterUseCase(store.Recruiters(), nil),
		MessageUC:     usecase.NewMessageUseCase(store.Messages(), store.Users(), nil),
		AdminUC:       usecase.NewAdminUseCase(store.Users(), log),
		UserUC:        usecase.NewUserUseCase(store.Users()),
		Metrics:       rec,
		RateLimiter:   limiter,
		Cookies: apphttp.CookieConfig{
			SessionName:      "scoutline_session",
			SessionTTL:       time.Hour,
			SelectedRoleName: "selected_role",
			SelectedRoleTTL:  15 * time.Minute,
		},
		AuthPerMinute:          100,
		RoleSelectionPerMinute: rolesPerMinute,
		Log:                    log,
	}
	for _, o := range opts {
		o(&deps, store)
	}
	apphttp.Router(app, deps)
	return &testEnv{app: app, store: store, idp: idp, reg: reg}
}

// tokenFor emite un token para el usuario guardado con ese ID.
func (e *testEnv) tokenFor(t *testing.T, id string) string {
	t.Helper()
	u, err := e.store.Users().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	tok, err := e.idp.IssueToken(context.Background(), u)
	require.NoError(t, err)
	return tok
}

type reqOpt func(*http.Request)

func withBearer(tok string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func withCookie(name, value string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func acceptJSON() reqOpt {
	return func(r *http.Request) { r.Header.Set("Accept", "application/json") }
}

// browserForm simula un formulario HTML: cuerpo urlencoded y Accept de navegador.
func browserForm() reqOpt {
	return func(r *http.Request) {
		r.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		r.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, opts ...reqOpt) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func cookieValue(resp *http.Response, name string) (string, bool) {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}
