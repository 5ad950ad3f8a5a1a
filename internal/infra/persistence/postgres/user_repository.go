// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/infra/persistence/model"
	"dealfinder/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
// Lookups go through the generated query builder; partial updates use the raw handle.
type userRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
		q:  query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).Where(u.ID.Eq(id)).First()
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address. Emails are stored lower-cased.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).Where(u.Email.Eq(normalizeEmail(email))).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile and moderation fields of a user. The password hash is left untouched.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("name", "email", "role", "avatar", "phone", "address", "is_verified", "updated_at").
		Updates(userM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.Email = userM.Email
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).Where(u.ID.Eq(id)).UpdateSimple(u.PasswordHash.Value(passwordHash))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user row.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).Where(u.ID.Eq(id)).Delete()
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user still owns businesses")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of users, newest first.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter, page entity.Pagination) (*entity.Page[*entity.User], error) {
	u := repo.q.UserModel
	conds := userConditions(repo.q, filter)

	total, err := u.WithContext(ctx).Where(conds...).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	rows, err := u.WithContext(ctx).
		Where(conds...).
		Order(u.CreatedAt.Desc(), u.ID.Desc()).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return &entity.Page[*entity.User]{Items: users, Total: total, Pagination: page}, nil
}

// Count returns the number of users matching the filter.
func (repo *userRepository) Count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	u := repo.q.UserModel

	total, err := u.WithContext(ctx).Where(userConditions(repo.q, filter)...).Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return total, nil
}

// userConditions translates the admin user filter into typed predicates.
// Search is case-insensitive over name and email.
func userConditions(q *query.Query, filter repository.UserFilter) []gen.Condition {
	u := q.UserModel

	var conds []gen.Condition
	if filter.Role != nil {
		conds = append(conds, u.Role.Eq(filter.Role.String()))
	}
	if strings.TrimSpace(filter.Search) != "" {
		pattern := strings.ToLower(likePattern(filter.Search))
		conds = append(conds, field.Or(u.Name.Lower().Like(pattern), u.Email.Lower().Like(pattern)))
	}
	if filter.CreatedSince != nil {
		conds = append(conds, u.CreatedAt.Gte(*filter.CreatedSince))
	}

	return conds
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Avatar:       data.Avatar,
		Phone:        data.Phone,
		Address:      toAddressDomain(data.Address.Data()),
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         strings.TrimSpace(data.Name),
		Email:        normalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Avatar:       data.Avatar,
		Phone:        data.Phone,
		Address:      datatypes.NewJSONType(fromAddressDomain(data.Address)),
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toAddressDomain(data model.AddressDocument) entity.Address {
	return entity.Address{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,
	}
}

func fromAddressDomain(data entity.Address) model.AddressDocument {
	return model.AddressDocument{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,
	}
}

func toUserSummaryDomain(data *model.UserModel) *entity.UserSummary {
	if data == nil {
		return nil
	}

	return &entity.UserSummary{ID: data.ID, Name: data.Name, Email: data.Email}
}
