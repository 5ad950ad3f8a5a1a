package impl

import (
	"context"
	"testing"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/domain/service"
	mockRepo "dealfinder/internal/mocks/repository"
	mockService "dealfinder/internal/mocks/service"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service       usecase.BusinessUsecase
	txManager     *mockRepo.MockTransactionManager
	businessRepo  *mockRepo.MockBusinessRepository
	promotionRepo *mockRepo.MockPromotionRepository
	storage       *mockService.MockImageStorage
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	fixtures := businessServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		businessRepo:  mockRepo.NewMockBusinessRepository(t),
		promotionRepo: mockRepo.NewMockPromotionRepository(t),
		storage:       mockService.NewMockImageStorage(t),
	}

	fixtures.service = NewBusinessService(BusinessServiceParams{
		TxManager:     fixtures.txManager,
		BusinessRepo:  fixtures.businessRepo,
		PromotionRepo: fixtures.promotionRepo,
		Storage:       fixtures.storage,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return fixtures
}

func newCreateBusinessInput() *usecase.CreateBusinessInput {
	return &usecase.CreateBusinessInput{
		Name:         "  Luigi's Pizza ",
		Description:  "Wood fired pizza since 1982",
		Category:     entity.CategoryFood,
		Website:      "https://luigis.example.com",
		ContactEmail: " Hello@Luigis.Example.com ",
	}
}

func TestBusinessService_Create_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.businessRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Business) bool {
			return b.OwnerID == ownerID && b.Status == entity.BusinessStatusPending
		})).
		Run(func(_ context.Context, b *entity.Business) { b.ID = uuid.New() }).
		Return(nil)

	business, err := fx.service.Create(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, newCreateBusinessInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, business.ID)
	assert.Equal(t, "Luigi's Pizza", business.Name)
	assert.Equal(t, "hello@luigis.example.com", business.ContactEmail)
	assert.Equal(t, entity.DefaultBusinessLogo, business.Logo)
	assert.False(t, business.IsVerified)
	assert.Zero(t, business.PromotionCount)
}

func TestBusinessService_Create_StoresLogoAndCover(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := newCreateBusinessInput()
	logo, cover := pngUpload("logo.png"), pngUpload("cover.png")
	input.Logo, input.CoverImage = &logo, &cover

	fx.storage.EXPECT().Save(ctx, uploadNamed("logo.png")).Return("/uploads/logo-1.png", nil).Once()
	fx.storage.EXPECT().Save(ctx, uploadNamed("cover.png")).Return("/uploads/cover-1.png", nil).Once()
	fx.businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

	business, err := fx.service.Create(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, input)

	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo-1.png", business.Logo)
	assert.Equal(t, "/uploads/cover-1.png", business.CoverImage)
}

func TestBusinessService_Create_RegularUserForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.Create(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RoleUser}, newCreateBusinessInput())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBusinessService_Create_ValidationErrors(t *testing.T) {
	fx := createTestBusinessService(t)

	input := newCreateBusinessInput()
	input.Category = "pets"
	input.Website = "not a url"

	_, err := fx.service.Create(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}, input)

	var fieldErrs entity.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Len(t, fieldErrs, 2)
}

func TestBusinessService_Get_RecordsImpression(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := newOwnedBusiness(uuid.New())
	business.Impressions = 4
	business.Owner = &entity.UserSummary{ID: business.OwnerID, Name: "Luigi"}

	fx.businessRepo.EXPECT().IncrementImpressions(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	got, err := fx.service.Get(ctx, business.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Impressions)
	assert.Equal(t, "Luigi", got.Owner.Name)
}

func TestBusinessService_Get_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.businessRepo.EXPECT().IncrementImpressions(ctx, id).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.Get(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBusinessService_Update_Owner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := newOwnedBusiness(ownerID)
	business.Description = "Pizza"
	business.Category = entity.CategoryFood

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(b *entity.Business) bool { return b.Name == "Luigi's Trattoria" })).
		Return(nil)

	input := &usecase.UpdateBusinessInput{Name: ptr(" Luigi's Trattoria ")}
	updated, err := fx.service.Update(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, business.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Luigi's Trattoria", updated.Name)
}

func TestBusinessService_Update_ReplacesLogo(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := newOwnedBusiness(ownerID)
	business.Description = "Pizza"
	business.Category = entity.CategoryFood
	logo := pngUpload("new-logo.webp")

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.storage.EXPECT().Save(ctx, mock.AnythingOfType("service.ImageUpload")).Return("/uploads/new-logo.webp", nil)
	fx.businessRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "/uploads/logo.png").Return(nil)

	input := &usecase.UpdateBusinessInput{Logo: &logo}
	updated, err := fx.service.Update(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, business.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "/uploads/new-logo.webp", updated.Logo)
}

func TestBusinessService_Update_NotOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := newOwnedBusiness(uuid.New())
	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Update(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}, business.ID, &usecase.UpdateBusinessInput{})

	assert.ErrorIs(t, err, domainerrors.ErrBusinessOwnershipViolation)
}

func TestBusinessService_Delete_CascadesPromotions(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := newOwnedBusiness(uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
	txPromotionRepo := mockRepo.NewMockPromotionRepository(t)
	factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
	factory.EXPECT().NewPromotionRepository().Return(txPromotionRepo)
	txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	txPromotionRepo.EXPECT().DeleteByBusiness(ctx, []uuid.UUID{business.ID}).
		Return(repository.RemovedPromotions{Count: 3, Images: []string{"/uploads/deal-1.png", "/uploads/deal-2.png"}}, nil)
	txBusinessRepo.EXPECT().Delete(ctx, business.ID).Return(nil)
	expectTransaction(fx.txManager, factory)

	var deleted []string
	fx.storage.EXPECT().Delete(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, path string) { deleted = append(deleted, path) }).
		Return(nil)

	err := fx.service.Delete(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, business.ID)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/uploads/deal-1.png", "/uploads/deal-2.png", "/uploads/logo.png"}, deleted)
}

func TestBusinessService_Delete_KeepsFilesOnRollback(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := newOwnedBusiness(uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
	txPromotionRepo := mockRepo.NewMockPromotionRepository(t)
	factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
	factory.EXPECT().NewPromotionRepository().Return(txPromotionRepo)
	txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	txPromotionRepo.EXPECT().DeleteByBusiness(ctx, []uuid.UUID{business.ID}).
		Return(repository.RemovedPromotions{Count: 1, Images: []string{"/uploads/deal-1.png"}}, nil)
	txBusinessRepo.EXPECT().Delete(ctx, business.ID).Return(errors.New("serialization failure"))
	expectTransaction(fx.txManager, factory)

	err := fx.service.Delete(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, business.ID)

	require.Error(t, err)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBusinessService_Delete_OwnerForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ownerID := uuid.New()
	err := fx.service.Delete(context.Background(), entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBusinessService_Delete_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
	factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
	txBusinessRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBusinessNotFound)
	expectTransaction(fx.txManager, factory)

	err := fx.service.Delete(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, id)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBusinessService_MyBusinesses(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := []*entity.Business{newOwnedBusiness(ownerID), newOwnedBusiness(ownerID)}
	fx.businessRepo.EXPECT().ListByOwner(ctx, ownerID).Return(owned, nil)

	got, err := fx.service.MyBusinesses(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBusinessService_Promotions_IncludesInactive(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := newOwnedBusiness(ownerID)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.promotionRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.PromotionFilter) bool {
			return f.BusinessID != nil && *f.BusinessID == business.ID && f.LiveAt == nil && f.Active == nil
		}), repository.SortNewest, entity.Pagination{Page: 1, Limit: 100}).
		Return(&entity.Page[*entity.Promotion]{}, nil)

	_, err := fx.service.Promotions(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, business.ID, 0, 0)

	require.NoError(t, err)
}

func TestBusinessService_SetStatus(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	business := newOwnedBusiness(uuid.New())
	business.Status = entity.BusinessStatusSuspended

	fx.businessRepo.EXPECT().SetStatus(ctx, business.ID, entity.BusinessStatusSuspended).Return(business, nil)

	got, err := fx.service.SetStatus(ctx, admin, business.ID, entity.BusinessStatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusSuspended, got.Status)

	_, err = fx.service.SetStatus(ctx, admin, business.ID, "closed")
	var fieldErrs entity.ValidationErrors
	assert.True(t, errors.As(err, &fieldErrs))
}

func TestMediaStore_Validate(t *testing.T) {
	store := newMediaStore(nil, newTestConfig())

	big := pngUpload("big.png")
	big.Size = 6 << 20
	text := pngUpload("notes.png")
	text.ContentType = "text/plain"

	tests := []struct {
		name    string
		uploads []service.ImageUpload
		wantErr error
	}{
		{name: "accepted", uploads: []service.ImageUpload{pngUpload("a.JPG"), pngUpload("b.webp")}},
		{name: "extension", uploads: []service.ImageUpload{pngUpload("a.svg")}, wantErr: domainerrors.ErrInvalidImage},
		{name: "content type", uploads: []service.ImageUpload{text}, wantErr: domainerrors.ErrInvalidImage},
		{name: "size", uploads: []service.ImageUpload{big}, wantErr: domainerrors.ErrImageTooLarge},
		{
			name: "count",
			uploads: []service.ImageUpload{
				pngUpload("1.png"), pngUpload("2.png"), pngUpload("3.png"),
				pngUpload("4.png"), pngUpload("5.png"), pngUpload("6.png"),
			},
			wantErr: domainerrors.ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.validate(tt.uploads...)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMediaStore_SaveFailureDiscardsStoredImages(t *testing.T) {
	storage := mockService.NewMockImageStorage(t)
	store := newMediaStore(storage, newTestConfig())
	ctx := context.Background()

	first, second := pngUpload("1.png"), pngUpload("2.png")
	storage.EXPECT().Save(ctx, uploadNamed("1.png")).Return("/uploads/1.png", nil).Once()
	storage.EXPECT().Save(ctx, uploadNamed("2.png")).Return("", errors.New("bucket unavailable")).Once()
	storage.EXPECT().Delete(ctx, "/uploads/1.png").Return(nil)

	_, err := store.save(ctx, newDiscardLogger(), first, second)

	assert.ErrorIs(t, err, domainerrors.ErrImageStorageFailed)
}
