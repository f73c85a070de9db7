package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"minutely/internal/models/db_models"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *db_models.Meeting) error
	FindByID(ctx context.Context, id string) (*db_models.Meeting, error)
	List(ctx context.Context, page int, pageSize int) ([]db_models.Meeting, error)
	Count(ctx context.Context) (int64, error)
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (m *meetingRepository) Create(ctx context.Context, meeting *db_models.Meeting) error {
	return m.db.WithContext(ctx).Create(meeting).Error
}

func (m *meetingRepository) FindByID(ctx context.Context, id string) (*db_models.Meeting, error) {
	var meeting db_models.Meeting
	err := m.db.WithContext(ctx).First(&meeting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (m *meetingRepository) List(ctx context.Context, page int, pageSize int) ([]db_models.Meeting, error) {
	var meetings []db_models.Meeting
	err := m.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("meeting_date DESC").Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (m *meetingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&db_models.Meeting{}).Count(&count).Error
	return count, err
}
