package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
)

type UserRepository struct {
	log     *logger.Logger
	mu      sync.RWMutex
	users   map[int64]*model.User
	byEmail map[string]int64
	nextID  int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:     log,
		users:   make(map[int64]*model.User),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byEmail[user.Email]; exists {
		u.log.Debug("Duplicate email on user create", slog.String("email", user.Email))
		return nil, custom_errors.ErrEmailExists
	}

	newUser := &model.User{
		ID:           u.nextID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	u.nextID++

	u.users[newUser.ID] = newUser
	u.byEmail[newUser.Email] = newUser.ID

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id, exists := u.byEmail[email]
	if !exists {
		u.log.Debug("User not found by email", slog.String("email", email))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *u.users[id]
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}
