package http

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// keyedLimiter limiter de una clave (usuario o IP) y su último uso.
type keyedLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limita peticiones por clave con token buckets independientes por grupo
// ("auth", "role_selection", ...). Las claves sin uso se limpian en segundo plano.
type RateLimiter struct {
	mu              sync.Mutex
	buckets         map[string]map[string]*keyedLimiter
	cleanupInterval time.Duration
	log             zerolog.Logger
	now             func() time.Time
	stopCh          chan struct{}
	stopOnce        sync.Once
}

// NewRateLimiter crea el limitador y arranca la limpieza periódica.
func NewRateLimiter(cleanupInterval time.Duration, log zerolog.Logger) *RateLimiter {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	rl := &RateLimiter{
		buckets:         make(map[string]map[string]*keyedLimiter),
		cleanupInterval: cleanupInterval,
		log:             log,
		now:             time.Now,
		stopCh:          make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop detiene la limpieza en segundo plano.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware permite perMinute peticiones por minuto (ráfaga = perMinute) para cada
// usuario autenticado, o por IP si no hay sesión. perMinute <= 0 desactiva el límite.
func (rl *RateLimiter) Middleware(group string, perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	limit := rate.Limit(float64(perMinute) / 60.0)
	return func(c *fiber.Ctx) error {
		key := GetUserID(c)
		if key == "" {
			key = "ip:" + c.IP()
		}
		if !rl.limiter(group, key, limit, perMinute).Allow() {
			rl.log.Warn().Str("group", group).Str("key", key).Msg("rate limit excedido")
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(limit)))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas peticiones, intente más tarde",
			})
		}
		return c.Next()
	}
}

// Size número de claves activas en un grupo.
func (rl *RateLimiter) Size(group string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets[group])
}

func (rl *RateLimiter) limiter(group, key string, limit rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	b, ok := rl.buckets[group]
	if !ok {
		b = make(map[string]*keyedLimiter)
		rl.buckets[group] = b
	}
	kl, ok := b[key]
	if !ok {
		kl = &keyedLimiter{limiter: rate.NewLimiter(limit, burst)}
		b[key] = kl
	}
	kl.lastAccess = rl.now()
	return kl.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup elimina claves sin uso durante dos intervalos.
func (rl *RateLimiter) cleanup() {
	ttl := 2 * rl.cleanupInterval
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for _, b := range rl.buckets {
		for key, kl := range b {
			if now.Sub(kl.lastAccess) > ttl {
				delete(b, key)
			}
		}
	}
}

// retryAfterSeconds segundos hasta que se repone un token.
func retryAfterSeconds(limit rate.Limit) int {
	s := int(math.Ceil(1.0 / float64(limit)))
	if s < 1 {
		return 1
	}
	return s
}
