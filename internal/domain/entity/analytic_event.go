package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies an analytic event.
type EventType string

const (
	EventTypeView       EventType = "view"
	EventTypeClick      EventType = "click"
	EventTypeConversion EventType = "conversion"
	EventTypeSignup     EventType = "signup"
	EventTypeLogin      EventType = "login"
	EventTypeSearch     EventType = "search"
)

// IsValid checks if the EventType is a valid value.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeView, EventTypeClick, EventTypeConversion, EventTypeSignup, EventTypeLogin, EventTypeSearch:
		return true
	default:
		return false
	}
}

// DeviceType is the coarse class of the client device.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceOther   DeviceType = "other"
)

// ClientInfo is the request metadata attached to an analytic event.
type ClientInfo struct {
	Device  DeviceType `json:"device" bson:"device"`
	Browser string     `json:"browser,omitempty" bson:"browser,omitempty"`
	OS      string     `json:"os,omitempty" bson:"os,omitempty"`
	IP      string     `json:"ip,omitempty" bson:"ip,omitempty"`
	Referer string     `json:"referer,omitempty" bson:"referer,omitempty"`
}

// AnalyticEvent is an immutable entry of the event log.
type AnalyticEvent struct {
	ID          uuid.UUID  `json:"id"`
	EventType   EventType  `json:"eventType"`
	UserID      *uuid.UUID `json:"userId,omitempty"`
	PromotionID *uuid.UUID `json:"promotionId,omitempty"`
	BusinessID  *uuid.UUID `json:"businessId,omitempty"`
	SearchQuery string     `json:"searchQuery,omitempty"`
	Client      ClientInfo `json:"client"`
	Timestamp   time.Time  `json:"timestamp"`
}

// NewAnalyticEvent stamps a new event of the given type.
func NewAnalyticEvent(eventType EventType, client ClientInfo, now time.Time) *AnalyticEvent {
	if client.Device == "" {
		client.Device = DeviceOther
	}

	return &AnalyticEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Client:    client,
		Timestamp: now,
	}
}
