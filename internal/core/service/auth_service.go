package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements registration and credential verification over the
// user collection.
type AuthService struct {
	store    ports.Store
	queue    ports.NotificationQueue
	validate *validator.Validate
	cost     int
	logger   zerolog.Logger
}

// NewAuthService builds an AuthService. cost is the bcrypt work factor;
// out-of-range values fall back to the library default.
func NewAuthService(store ports.Store, queue ports.NotificationQueue, cost int, logger zerolog.Logger) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		store:    store,
		queue:    queue,
		validate: validator.New(),
		cost:     cost,
		logger:   logger,
	}
}

func (s *AuthService) loadUsers(ctx context.Context) (map[string]domain.User, error) {
	users := make(map[string]domain.User)
	if _, err := s.store.Load(ctx, ports.CollectionUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// Register creates a new account with role "user", persists the collection,
// and enqueues a welcome email. The email is matched against existing keys
// case-sensitively, exactly as stored.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.UserView, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if err := s.validate.Var(in.Email, "required,email"); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := users[in.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	users[in.Email] = user

	if err := s.store.Save(ctx, ports.CollectionUsers, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}

	s.queue.Enqueue(ports.Notification{
		To:       in.Email,
		Subject:  "Welcome to Our Grocery Store!",
		HTMLBody: welcomeEmail(in.Username),
	})

	s.logger.Info().Str("email", in.Email).Msg("user registered")

	return &ports.UserView{
		Email:     in.Email,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Authenticate verifies the credentials for email. The bcrypt comparison is
// constant-time; a mismatch is reported without echoing any password material.
// Stored state is never mutated.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*ports.UserView, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	user, ok := users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidPassword
	}

	return &ports.UserView{
		Email:     email,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ListUsers returns every account sorted by email, hashes stripped.
func (s *AuthService) ListUsers(ctx context.Context) ([]ports.UserView, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	views := make([]ports.UserView, 0, len(users))
	for _, email := range emails {
		u := users[email]
		views = append(views, ports.UserView{
			Email:     email,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return views, nil
}

// EnsureAdmin creates an administrator account if email is not yet registered.
// An existing account is left untouched, whatever its role.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domain.ErrMissingFields
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	if _, exists := users[email]; exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	users[email] = domain.User{
		Username:     "Administrator",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Save(ctx, ports.CollectionUsers, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("admin account bootstrapped")
	return nil
}
