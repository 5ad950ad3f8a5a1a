package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterRows(id uuid.UUID, impressions, clicks int64, rate float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "impressions", "clicks", "conversion_rate", "is_active"}).
		AddRow(id.String(), impressions, clicks, rate, true)
}

func TestPromotionRepository_IncrementImpressions(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(exactSQL(`UPDATE "promotions" SET "conversion_rate"=clicks::float8 / (impressions + 1) * 100,"impressions"=impressions + 1 WHERE id = $1 RETURNING *`)).
		WithArgs(id.String()).
		WillReturnRows(counterRows(id, 1, 0, 0))

	got, err := NewPromotionRepository(db).IncrementImpressions(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, int64(1), got.Impressions)
	assert.Zero(t, got.ConversionRate)
}

func TestPromotionRepository_IncrementClicks(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(exactSQL(`UPDATE "promotions" SET "clicks"=clicks + 1,"conversion_rate"=CASE WHEN impressions > 0 THEN (clicks + 1)::float8 / impressions * 100 ELSE 0 END WHERE id = $1 RETURNING *`)).
		WithArgs(id.String()).
		WillReturnRows(counterRows(id, 4, 1, 25))

	got, err := NewPromotionRepository(db).IncrementClicks(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.Clicks)
	assert.Equal(t, 25.0, got.ConversionRate)
}

func TestPromotionRepository_ViewThenClick(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPromotionRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`"impressions"=impressions + 1`)).
		WithArgs(id.String()).
		WillReturnRows(counterRows(id, 1, 0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`"clicks"=clicks + 1`)).
		WithArgs(id.String()).
		WillReturnRows(counterRows(id, 1, 1, 100))

	viewed, err := repo.IncrementImpressions(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), viewed.Impressions)
	assert.Zero(t, viewed.Clicks)
	assert.Zero(t, viewed.ConversionRate)

	clicked, err := repo.IncrementClicks(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), clicked.Impressions)
	assert.Equal(t, int64(1), clicked.Clicks)
	assert.Equal(t, 100.0, clicked.ConversionRate)
}

func TestPromotionRepository_IncrementMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "promotions"`)).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewPromotionRepository(db).IncrementClicks(context.Background(), id)

	assert.ErrorIs(t, err, repository.ErrPromotionNotFound)
}

func TestPromotionRepository_Count(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()
	category := entity.CategoryFood
	promoType := entity.PromotionTypeBOGO
	yes, no := true, false

	tests := []struct {
		name   string
		filter repository.PromotionFilter
		sql    string
		args   []driver.Value
	}{
		{
			name:   "no filter",
			filter: repository.PromotionFilter{},
			sql:    `SELECT count(*) FROM "promotions"`,
		},
		{
			name:   "live listing of one business with search",
			filter: repository.PromotionFilter{BusinessID: &businessID, Category: &category, LiveAt: &now, Query: " pizza "},
			sql: `SELECT count(*) FROM "promotions" WHERE "promotions"."business_id" = $1 AND "promotions"."category" = $2 ` +
				`AND "promotions"."is_active" = $3 AND "promotions"."end_date" > $4 ` +
				`AND to_tsvector('english', search_text) @@ plainto_tsquery('english', $5)`,
			args: []driver.Value{businessID.String(), "food", true, now, "pizza"},
		},
		{
			name:   "type featured active and age",
			filter: repository.PromotionFilter{Type: &promoType, Featured: &yes, Active: &no, CreatedSince: &now},
			sql: `SELECT count(*) FROM "promotions" WHERE "promotions"."type" = $1 AND "promotions"."is_featured" = $2 ` +
				`AND "promotions"."is_active" = $3 AND "promotions"."created_at" >= $4`,
			args: []driver.Value{"bogo", true, false, now},
		},
		{
			name:   "blank search is ignored",
			filter: repository.PromotionFilter{Query: "   "},
			sql:    `SELECT count(*) FROM "promotions"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			expect := mock.ExpectQuery(exactSQL(tt.sql))
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

			total, err := NewPromotionRepository(db).Count(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(7), total)
		})
	}
}

func TestPromotionRepository_ListOrder(t *testing.T) {
	tests := []struct {
		sort  repository.PromotionSort
		order string
	}{
		{
			sort:  repository.SortNewest,
			order: `"promotions"."created_at" DESC,"promotions"."id" DESC`,
		},
		{
			sort:  repository.PromotionSort("unknown"),
			order: `"promotions"."created_at" DESC,"promotions"."id" DESC`,
		},
		{
			sort: repository.SortDiscount,
			order: `"promotions"."discount_percentage" IS NULL,"promotions"."discount_percentage" DESC,` +
				`"promotions"."created_at" DESC,"promotions"."id" DESC`,
		},
		{
			sort: repository.SortPriceLow,
			order: `"promotions"."discounted_price" IS NULL,"promotions"."discounted_price" ASC,` +
				`"promotions"."created_at" DESC,"promotions"."id" DESC`,
		},
		{
			sort: repository.SortPriceHigh,
			order: `"promotions"."discounted_price" IS NULL,"promotions"."discounted_price" DESC,` +
				`"promotions"."created_at" DESC,"promotions"."id" DESC`,
		},
		{
			sort:  repository.SortEndingSoon,
			order: `"promotions"."end_date" ASC,"promotions"."id" ASC`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			db, mock := newMockDB(t)
			now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "promotions" WHERE "promotions"."is_active" = $1 AND "promotions"."end_date" > $2`)).
				WithArgs(true, now).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "promotions" WHERE "promotions"."is_active" = $1 AND "promotions"."end_date" > $2 ORDER BY ` + tt.order + ` LIMIT $3 OFFSET $4`)).
				WithArgs(true, now, 10, 10).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			page, err := NewPromotionRepository(db).List(context.Background(),
				repository.PromotionFilter{LiveAt: &now}, tt.sort, entity.Pagination{Page: 2, Limit: 10})
			require.NoError(t, err)

			assert.Equal(t, int64(25), page.Total)
			assert.Empty(t, page.Items)
		})
	}
}

func TestPromotionRepository_DeleteByBusiness(t *testing.T) {
	db, mock := newMockDB(t)
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(exactSQL(`DELETE FROM "promotions" WHERE "promotions"."business_id" IN ($1,$2) RETURNING "images"`)).
		WithArgs(first.String(), second.String()).
		WillReturnRows(sqlmock.NewRows([]string{"images"}).
			AddRow(`{/uploads/promotions/a.png,/uploads/promotions/b.png}`).
			AddRow(`{}`).
			AddRow(`{/uploads/promotions/c.png}`))

	removed, err := NewPromotionRepository(db).DeleteByBusiness(context.Background(), []uuid.UUID{first, second})
	require.NoError(t, err)

	assert.Equal(t, int64(3), removed.Count)
	assert.Equal(t, []string{
		"/uploads/promotions/a.png",
		"/uploads/promotions/b.png",
		"/uploads/promotions/c.png",
	}, removed.Images)
}

func TestPromotionRepository_DeleteByBusinessWithoutIDs(t *testing.T) {
	db, _ := newMockDB(t)

	removed, err := NewPromotionRepository(db).DeleteByBusiness(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, removed.Count)
	assert.Empty(t, removed.Images)
}
