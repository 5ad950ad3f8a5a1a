// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "dealfinder/internal/delivery/context"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/domain/service"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens a new user or business account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsSelfAssignable() {
		srv.log(ctx).Warn("Registration with restricted role rejected", slog.String("role", role.String()))

		return nil, domainerrors.ErrRoleNotAllowed.WrapMessage("role cannot be chosen at registration")
	}

	user := &entity.User{
		Name:   strings.TrimSpace(input.Name),
		Email:  normalizeEmail(input.Email),
		Role:   role,
		Avatar: entity.DefaultAvatar,
	}
	if err := validateCredentials(user.Name, user.Email, input.Password); err != nil {
		return nil, invalid(err, "invalid registration")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, user.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return srv.issue(ctx, user)
}

// Login verifies email and password and signs the user in.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")
	}
	srv.upgradeHash(ctx, user, input.Password)

	return srv.issue(ctx, user)
}

// upgradeHash rehashes under the current work factor. Failures only cost the
// upgrade, never the login.
func (srv *authService) upgradeHash(ctx context.Context, user *entity.User, password string) {
	if !srv.hasher.NeedsRehash(user.PasswordHash) {
		return
	}

	hash, err := srv.hasher.Hash(password)
	if err == nil {
		err = srv.userRepo.UpdatePassword(ctx, user.ID, hash)
	}
	if err != nil {
		srv.log(ctx).Warn("Password rehash failed", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token is required")
	}

	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issue(ctx, user)
}

// Me returns the authenticated user.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile changes the self-service profile fields.
func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err, "failed to find user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
		if utf8.RuneCountInString(user.Name) < minNameLength {
			return nil, invalid(invalidField("name", "must be at least 3 characters"), "invalid profile")
		}
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
		if user.Avatar == "" {
			user.Avatar = entity.DefaultAvatar
		}
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, userNotFound(err, "failed to update profile")
	}

	return user, nil
}

// UpdatePassword replaces the password after checking the current one.
func (srv *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return invalid(invalidField("newPassword", "must be at least 8 characters"), "invalid password")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return userNotFound(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrPasswordMismatch.WrapMessage("current password is incorrect")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return userNotFound(err, "failed to update password")
	}
	srv.log(ctx).Info("Password updated", slog.Any("userID", userID))

	return nil
}

// SeedAdmin creates the bootstrap administrator unless the email is already registered.
func (srv *authService) SeedAdmin(ctx context.Context, input *usecase.SeedAdminInput) (bool, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return false, nil
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to check admin account")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Administrator"
	}
	if err := validateCredentials(name, email, input.Password); err != nil {
		return false, invalid(err, "invalid admin account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Avatar:       entity.DefaultAvatar,
		IsVerified:   true,
	}
	if err := srv.userRepo.Create(ctx, admin); err != nil {
		return false, errors.Wrap(err, "failed to create admin account")
	}
	srv.log(ctx).Info("Admin account seeded", slog.Any("userID", admin.ID), slog.String("email", email))

	return true, nil
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	tokens, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(name, email, password string) error {
	var errs entity.ValidationErrors
	if utf8.RuneCountInString(name) < minNameLength {
		errs.Add("name", "must be at least %d characters", minNameLength)
	}
	if !entity.IsEmail(email) {
		errs.Add("email", "must be a valid email address")
	}
	if len(password) < minPasswordLength {
		errs.Add("password", "must be at least %d characters", minPasswordLength)
	}

	return errs.Err()
}
