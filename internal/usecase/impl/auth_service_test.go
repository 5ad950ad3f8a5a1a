package impl

import (
	"context"
	"testing"
	"time"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	mockRepo "dealfinder/internal/mocks/repository"
	mockService "dealfinder/internal/mocks/service"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fixtures := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	fixtures.service = NewAuthService(AuthServiceParams{
		UserRepo:     fixtures.userRepo,
		Hasher:       fixtures.hasher,
		TokenService: fixtures.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fixtures
}

func newTestTokens() *entity.TokenPair {
	return &entity.TokenPair{
		AccessToken:      "access",
		RefreshToken:     "refresh",
		AccessExpiresAt:  testNow.Add(15 * time.Minute),
		RefreshExpiresAt: testNow.Add(7 * 24 * time.Hour),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := newTestTokens()

	fx.userRepo.EXPECT().FindByEmail(ctx, "luigi@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("supersecret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash == "hashed" && u.Role == entity.RoleBusiness && u.Avatar == entity.DefaultAvatar
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, entity.RoleBusiness).Return(tokens, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     " Luigi ",
		Email:    " Luigi@Example.com",
		Password: "supersecret",
		Role:     entity.RoleBusiness,
	})

	require.NoError(t, err)
	assert.Equal(t, "Luigi", out.User.Name)
	assert.Equal(t, "luigi@example.com", out.User.Email)
	assert.Equal(t, tokens, out.Tokens)
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "anna@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("supersecret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(mock.Anything, entity.RoleUser).Return(newTestTokens(), nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Anna", Email: "anna@example.com", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name: "Mallory", Email: "mallory@example.com", Password: "supersecret", Role: entity.RoleAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "Al", Email: "nope", Password: "short"})

	var fieldErrs entity.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Len(t, fieldErrs, 3)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "luigi@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Luigi", Email: "luigi@example.com", Password: "supersecret"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "luigi@example.com", PasswordHash: "hashed", Role: entity.RoleUser}

	tests := []struct {
		name     string
		password string
		setup    func(fx authServiceFixtures)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			password: "supersecret",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "luigi@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("supersecret", "hashed").Return(true)
				fx.hasher.EXPECT().NeedsRehash("hashed").Return(false)
				fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleUser).Return(newTestTokens(), nil)
			},
		},
		{
			name:     "outdated hash is upgraded",
			password: "supersecret",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "luigi@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("supersecret", "hashed").Return(true)
				fx.hasher.EXPECT().NeedsRehash("hashed").Return(true)
				fx.hasher.EXPECT().Hash("supersecret").Return("rehashed", nil)
				fx.userRepo.EXPECT().UpdatePassword(mock.Anything, user.ID, "rehashed").Return(nil)
				fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleUser).Return(newTestTokens(), nil)
			},
		},
		{
			name:     "failed upgrade still signs in",
			password: "supersecret",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "luigi@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("supersecret", "hashed").Return(true)
				fx.hasher.EXPECT().NeedsRehash("hashed").Return(true)
				fx.hasher.EXPECT().Hash("supersecret").Return("rehashed", nil)
				fx.userRepo.EXPECT().UpdatePassword(mock.Anything, user.ID, "rehashed").Return(errors.New("db down"))
				fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleUser).Return(newTestTokens(), nil)
			},
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "luigi@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "supersecret",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "luigi@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:     "missing password",
			password: "",
			setup:    func(authServiceFixtures) {},
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "LUIGI@example.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, out.User.ID)
			assert.Equal(t, "access", out.Tokens.AccessToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.tokenService.EXPECT().ParseRefreshToken("refresh").Return(&entity.TokenClaims{UserID: user.ID, Role: user.Role}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleAdmin).Return(newTestTokens(), nil)

	out, err := fx.service.RefreshToken(ctx, "refresh")

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ParseRefreshToken("forged").Return(nil, errors.New("signature is invalid"))

	_, err := fx.service.RefreshToken(context.Background(), "forged")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	_, err = fx.service.RefreshToken(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Luigi", Avatar: "/uploads/me.png"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	input := &usecase.UpdateProfileInput{
		Phone:   ptr(" +39 055 123 "),
		Avatar:  ptr(""),
		Address: &entity.Address{City: "Florence", Country: "IT"},
	}
	updated, err := fx.service.UpdateProfile(ctx, user.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "+39 055 123", updated.Phone)
	assert.Equal(t, entity.DefaultAvatar, updated.Avatar)
	assert.Equal(t, "Florence", updated.Address.City)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("old-secret", "old-hash").Return(true)
	fx.hasher.EXPECT().Hash("new-secret-123").Return("new-hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)

	err := fx.service.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "old-secret", NewPassword: "new-secret-123"})

	require.NoError(t, err)
}

func TestAuthService_UpdatePassword_Mismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("guess", "old-hash").Return(false)

	err := fx.service.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "guess", NewPassword: "new-secret-123"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAuthService_SeedAdmin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound).Once()
	fx.hasher.EXPECT().Hash("admin-password").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin && u.IsVerified && u.Name == "Administrator"
		})).
		Return(nil)

	created, err := fx.service.SeedAdmin(ctx, &usecase.SeedAdminInput{Email: "Admin@example.com", Password: "admin-password"})

	require.NoError(t, err)
	assert.True(t, created)
}

func TestAuthService_SeedAdmin_AlreadyPresent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	created, err := fx.service.SeedAdmin(ctx, &usecase.SeedAdminInput{Email: "admin@example.com", Password: "admin-password"})

	require.NoError(t, err)
	assert.False(t, created)

	created, err = fx.service.SeedAdmin(ctx, &usecase.SeedAdminInput{})
	require.NoError(t, err)
	assert.False(t, created)
}
