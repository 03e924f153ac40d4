package repositories

import (
	"context"
	"sync"
	"time"

	"satuBack/internal/models"
)

// UserRepository keeps users and refresh sessions in memory. Unlike the
// catalog it is mutated at runtime (sign-ups, sign-ins), so access goes
// through a mutex.
type UserRepository struct {
	mu       sync.RWMutex
	nextID   int
	users    map[int]models.User
	sessions map[string]models.Session
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID:   1,
		users:    make(map[int]models.User),
		sessions: make(map[string]models.Session),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if user.Email != "" && u.Email == user.Email {
			return models.User{}, models.ErrDuplicateEmail
		}
		if user.Phone != "" && u.Phone == user.Phone {
			return models.User{}, models.ErrDuplicatePhone
		}
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

// GetUserByLogin looks a user up by email or phone, whichever is non-empty.
func (r *UserRepository) GetUserByLogin(ctx context.Context, email, phone string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if email != "" && u.Email == email {
			return u, nil
		}
		if phone != "" && u.Phone == phone {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return models.User{}, models.ErrUserNotFound
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now
	r.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) SaveSession(ctx context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.RefreshToken] = session
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[refreshToken]
	if !ok {
		return models.Session{}, models.ErrSessionNotFound
	}
	return session, nil
}
