package mongo

import (
	"testing"
	"time"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCountByDayPipeline_AllEvents(t *testing.T) {
	since := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	pipeline := countByDayPipeline(repository.EventWindow{Since: since})
	require.Len(t, pipeline, 3)

	match := pipeline[0].Map()["$match"].(bson.D).Map()
	assert.Equal(t, bson.D{{Key: "$gte", Value: since}}, match["timestamp"])
	assert.NotContains(t, match, "business_id")

	sort := pipeline[2].Map()["$sort"].(bson.D)
	assert.Equal(t, "_id.date", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
}

func TestCountByDayPipeline_ScopedToBusiness(t *testing.T) {
	businessID := uuid.New()

	pipeline := countByDayPipeline(repository.EventWindow{Since: time.Now(), BusinessID: &businessID})

	match := pipeline[0].Map()["$match"].(bson.D).Map()
	assert.Equal(t, businessID.String(), match["business_id"])
}

func TestCountByDayPipeline_GroupsByUTCDay(t *testing.T) {
	pipeline := countByDayPipeline(repository.EventWindow{Since: time.Now()})

	group := pipeline[1].Map()["$group"].(bson.D).Map()
	key := group["_id"].(bson.D).Map()
	dateExpr := key["date"].(bson.D).Map()["$dateToString"].(bson.D).Map()

	assert.Equal(t, "%Y-%m-%d", dateExpr["format"])
	assert.Equal(t, "UTC", dateExpr["timezone"])
	assert.Equal(t, "$event_type", key["event_type"])
}

func TestFromAnalyticEventDomain(t *testing.T) {
	promotionID := uuid.New()
	businessID := uuid.New()
	local := time.Date(2026, 10, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))

	event := entity.NewAnalyticEvent(entity.EventTypeClick, entity.ClientInfo{Browser: "Firefox"}, local)
	event.PromotionID = &promotionID
	event.BusinessID = &businessID

	doc := fromAnalyticEventDomain(event)

	assert.Equal(t, event.ID.String(), doc.ID)
	assert.Equal(t, "click", doc.EventType)
	assert.Empty(t, doc.UserID)
	assert.Equal(t, promotionID.String(), doc.PromotionID)
	assert.Equal(t, businessID.String(), doc.BusinessID)
	assert.Equal(t, entity.DeviceOther, doc.Client.Device)
	assert.Equal(t, time.UTC, doc.Timestamp.Location())
	assert.Equal(t, 2, doc.Timestamp.Day())
}
