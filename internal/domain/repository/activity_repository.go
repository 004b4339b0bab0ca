package repository

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrActivityDuplicate is returned when an event has already been recorded.
var ErrActivityDuplicate = errors.New("activity already recorded")

// ActivityRepository stores the processed contact events.
type ActivityRepository interface {
	// Create returns ErrActivityDuplicate when the event ID was recorded before.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindRecent returns the latest activities, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}
