package service

import (
	"context"
	"fmt"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

// defaultUserPassword is assigned to admin-provisioned accounts whose create
// request carries no password. The account owner is expected to change it.
const defaultUserPassword = "password123"

// userService is the concrete implementation of UserService: the admin-only
// account management surface. Self-service registration goes through
// AuthService, never through here.
type userService struct {
	userRepository store.UserRepository
	idGenerator    IDGenerator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
func NewUserService(userRepository store.UserRepository, idGenerator IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// Create provisions an account with a caller-chosen role. The email is
// checked for an existing account first; the unique constraint still catches
// a create that loses a race. An empty password falls back to
// defaultUserPassword before hashing.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || !req.Role.Valid() {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	exists, err := s.userRepository.ExistsUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("email existence check failed")
		return models.User{}, fmt.Errorf("email existence check failed: %w", err)
	}
	if exists {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	password := req.Password
	if password == "" {
		password = defaultUserPassword
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           s.idGenerator.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// Update rewrites the mutable attributes of an account: name, email and
// role. Passwords are never updated through this path.
func (s *userService) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" || user.Name == "" || user.Email == "" || !user.Role.Valid() {
		log.Error().Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("id", user.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes an account. Outstanding tokens of the deleted account stop
// working on their next use because the authorization filter re-resolves the
// token subject against the store.
func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
