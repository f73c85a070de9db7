package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"minutely/internal/models/db_models"
)

type TaskRepository interface {
	BulkCreate(ctx context.Context, tasks []db_models.Task) error
	ListByMeeting(ctx context.Context, meetingID string) ([]db_models.Task, error)
	FindByID(ctx context.Context, id string) (*db_models.Task, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	CountOpen(ctx context.Context) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (t *taskRepository) BulkCreate(ctx context.Context, tasks []db_models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return t.db.WithContext(ctx).Create(&tasks).Error
}

func (t *taskRepository) ListByMeeting(ctx context.Context, meetingID string) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *taskRepository) FindByID(ctx context.Context, id string) (*db_models.Task, error) {
	var task db_models.Task
	err := t.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (t *taskRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result := t.db.WithContext(ctx).
		Model(&db_models.Task{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *taskRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(&db_models.Task{}).
		Where("status <> ?", "Completed").
		Count(&count).Error
	return count, err
}
