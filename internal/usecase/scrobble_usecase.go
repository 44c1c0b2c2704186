package usecase

import (
	"context"

	"scrobbler/internal/domain/entity"

	"github.com/google/uuid"
)

// ScrobbleAction is the player state the client reported.
type ScrobbleAction string

const (
	ScrobbleActionNone  ScrobbleAction = ""
	ScrobbleActionStart ScrobbleAction = "start"
	ScrobbleActionPause ScrobbleAction = "pause"
	ScrobbleActionStop  ScrobbleAction = "stop"
)

// ScrobbleInput is a decoded scrobble payload. Show and Episode stay nil when absent.
type ScrobbleInput struct {
	Show     *entity.Metadata `json:"show"`
	Episode  *entity.Metadata `json:"episode"`
	Progress *float64         `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Action   ScrobbleAction   `json:"-"`
}

// ScrobbleOutput holds the records the scrobble resolved to.
type ScrobbleOutput struct {
	Show    *entity.Content
	Episode *entity.Content
}

// ScrobbleUsecase ingests watch-activity events.
type ScrobbleUsecase interface {
	// Scrobble merges the payload into userID's library in one transaction.
	Scrobble(ctx context.Context, userID uuid.UUID, input *ScrobbleInput) (*ScrobbleOutput, error)
}
