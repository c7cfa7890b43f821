// Package memstore implementa los repositorios y el TxRunner en memoria para tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/scoutline-api/internal/domain"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Store estado compartido de todos los repositorios. Los campos Err* inyectan fallos.
type Store struct {
	mu         sync.Mutex
	users      map[string]entity.User
	athletes   map[string]entity.Athlete
	recruiters map[string]entity.Recruiter
	messages   map[string]entity.Message

	ErrGetUser       error
	ErrProfileExists error
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		users:      map[string]entity.User{},
		athletes:   map[string]entity.Athlete{},
		recruiters: map[string]entity.Recruiter{},
		messages:   map[string]entity.Message{},
	}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Athletes repositorio de atletas.
func (s *Store) Athletes() *AthleteRepo { return &AthleteRepo{s: s} }

// Recruiters repositorio de reclutadores.
func (s *Store) Recruiters() *RecruiterRepo { return &RecruiterRepo{s: s} }

// Messages repositorio de mensajes.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{s: s} }

// RunRoleSelection ejecuta fn y restaura el estado previo si devuelve error.
func (s *Store) RunRoleSelection(ctx context.Context, _ string, fn func(
	users repository.UserRepository,
	athletes repository.AthleteRepository,
	recruiters repository.RecruiterRepository,
) error) error {
	s.mu.Lock()
	users := cloneMap(s.users)
	athletes := cloneMap(s.athletes)
	recruiters := cloneMap(s.recruiters)
	s.mu.Unlock()

	if err := fn(s.Users(), s.Athletes(), s.Recruiters()); err != nil {
		s.mu.Lock()
		s.users, s.athletes, s.recruiters = users, athletes, recruiters
		s.mu.Unlock()
		return err
	}
	return nil
}

// PutUser inserta o reemplaza un usuario sin validar.
func (s *Store) PutUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ErrGetUser != nil {
		return nil, r.s.ErrGetUser
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) UpdateRole(_ context.Context, id string, role entity.Role, metadata entity.AuthMetadata) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	u.Metadata = metadata
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) List(_ context.Context, role entity.Role, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.User
	for _, u := range r.s.users {
		if role == "" || u.Role == role {
			u := u
			list = append(list, &u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *UserRepo) CountByRole(_ context.Context) (map[entity.Role]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[entity.Role]int{}
	for _, u := range r.s.users {
		out[u.Role]++
	}
	return out, nil
}

// AthleteRepo implementa repository.AthleteRepository.
type AthleteRepo struct{ s *Store }

var _ repository.AthleteRepository = (*AthleteRepo)(nil)

func (r *AthleteRepo) Create(_ context.Context, a *entity.Athlete) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.athletes {
		if x.UserID == a.UserID {
			return domain.ErrProfileAlreadyExists
		}
	}
	r.s.athletes[a.ID] = *a
	return nil
}

func (r *AthleteRepo) GetByID(_ context.Context, id string) (*entity.Athlete, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.athletes[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AthleteRepo) GetByUserID(_ context.Context, userID string) (*entity.Athlete, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.athletes {
		if a.UserID == userID {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AthleteRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	if err := r.s.ErrProfileExists; err != nil {
		return false, err
	}
	a, _ := r.GetByUserID(ctx, userID)
	return a != nil, nil
}

func (r *AthleteRepo) Update(_ context.Context, a *entity.Athlete) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.athletes[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.athletes[a.ID] = *a
	return nil
}

func (r *AthleteRepo) UpdateRating(_ context.Context, id string, rating decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.athletes[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Rating = rating
	r.s.athletes[id] = a
	return nil
}

func (r *AthleteRepo) Rankings(_ context.Context, f entity.AthleteFilter) ([]*entity.Athlete, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Athlete
	for _, a := range r.s.athletes {
		if f.Sport != "" && a.Sport != f.Sport {
			continue
		}
		if f.GraduationYear != 0 && a.GraduationYear != f.GraduationYear {
			continue
		}
		a := a
		list = append(list, &a)
	}
	sort.Slice(list, func(i, j int) bool {
		if c := list[i].Rating.Cmp(list[j].Rating); c != 0 {
			return c > 0
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return page(list, f.Limit, f.Offset), nil
}

// RecruiterRepo implementa repository.RecruiterRepository.
type RecruiterRepo struct{ s *Store }

var _ repository.RecruiterRepository = (*RecruiterRepo)(nil)

func (r *RecruiterRepo) Create(_ context.Context, rec *entity.Recruiter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.recruiters {
		if x.UserID == rec.UserID {
			return domain.ErrProfileAlreadyExists
		}
	}
	r.s.recruiters[rec.ID] = *rec
	return nil
}

func (r *RecruiterRepo) GetByUserID(_ context.Context, userID string) (*entity.Recruiter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.recruiters {
		if rec.UserID == userID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *RecruiterRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	if err := r.s.ErrProfileExists; err != nil {
		return false, err
	}
	rec, _ := r.GetByUserID(ctx, userID)
	return rec != nil, nil
}

func (r *RecruiterRepo) Update(_ context.Context, rec *entity.Recruiter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.recruiters[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.recruiters[rec.ID] = *rec
	return nil
}

// MessageRepo implementa repository.MessageRepository.
type MessageRepo struct{ s *Store }

var _ repository.MessageRepository = (*MessageRepo)(nil)

func (r *MessageRepo) Create(_ context.Context, m *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages[m.ID] = *m
	return nil
}

func (r *MessageRepo) GetByID(_ context.Context, id string) (*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MessageRepo) ListForUser(_ context.Context, userID, mailbox string, limit, offset int) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Message
	for _, m := range r.s.messages {
		owner := m.RecipientID
		if mailbox == entity.MailboxSent {
			owner = m.SenderID
		}
		if owner == userID {
			m := m
			list = append(list, &m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *MessageRepo) MarkRead(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok || m.ReadAt != nil {
		return nil
	}
	now := time.Now()
	m.ReadAt = &now
	r.s.messages[id] = m
	return nil
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
