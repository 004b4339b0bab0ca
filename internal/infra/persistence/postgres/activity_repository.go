package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"
	"contacts/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type activityRepository struct {
	q *query.Query
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		q: query.Use(db),
	}
}

// Create records a processed event.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := &model.ActivityModel{
		ID:         activity.ID,
		EventID:    activity.EventID,
		EventType:  activity.EventType,
		SubjectID:  activity.SubjectID,
		RequestID:  activity.RequestID,
		Summary:    activity.Summary,
		OccurredAt: activity.OccurredAt,
		RecordedAt: activity.RecordedAt,
	}

	if err := repo.q.ActivityModel.WithContext(ctx).Create(activityM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActivityDuplicate
		}

		return errors.Wrap(err, "failed to record activity")
	}

	return nil
}

// FindRecent returns the newest activities first.
func (repo *activityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	activityMs, err := repo.q.ActivityModel.WithContext(ctx).
		Order(repo.q.ActivityModel.RecordedAt.Desc()).
		Limit(limit).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for _, a := range activityMs {
		activities = append(activities, &entity.Activity{
			ID:         a.ID,
			EventID:    a.EventID,
			EventType:  a.EventType,
			SubjectID:  a.SubjectID,
			RequestID:  a.RequestID,
			Summary:    a.Summary,
			OccurredAt: a.OccurredAt,
			RecordedAt: a.RecordedAt,
		})
	}

	return activities, nil
}
