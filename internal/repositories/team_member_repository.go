package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minutely/internal/models/db_models"
)

type TeamMemberRepository interface {
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]db_models.TeamMember, error)
	ListAll(ctx context.Context) ([]db_models.TeamMember, error)
	FindByID(ctx context.Context, id string) (*db_models.TeamMember, error)
	Create(ctx context.Context, member *db_models.TeamMember) error
	Update(ctx context.Context, member *db_models.TeamMember) error
	Delete(ctx context.Context, id string) error

	// FirstOrCreateByEmail reports whether a new row was inserted; an
	// existing email under the same manager is left untouched, which keeps
	// webhook participant ingestion idempotent.
	FirstOrCreateByEmail(ctx context.Context, member *db_models.TeamMember) (bool, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (t *teamMemberRepository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := t.db.WithContext(ctx).
		Where("project_manager_id = ?", managerID).
		Order("name ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (t *teamMemberRepository) ListAll(ctx context.Context) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := t.db.WithContext(ctx).Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (t *teamMemberRepository) FindByID(ctx context.Context, id string) (*db_models.TeamMember, error) {
	var member db_models.TeamMember
	err := t.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (t *teamMemberRepository) Create(ctx context.Context, member *db_models.TeamMember) error {
	return t.db.WithContext(ctx).Create(member).Error
}

func (t *teamMemberRepository) Update(ctx context.Context, member *db_models.TeamMember) error {
	return t.db.WithContext(ctx).Save(member).Error
}

func (t *teamMemberRepository) Delete(ctx context.Context, id string) error {
	result := t.db.WithContext(ctx).Delete(&db_models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *teamMemberRepository) FirstOrCreateByEmail(ctx context.Context, member *db_models.TeamMember) (bool, error) {
	var existing db_models.TeamMember
	err := t.db.WithContext(ctx).
		Where("email = ? AND project_manager_id = ?", member.Email, member.ProjectManagerID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := t.db.WithContext(ctx).Create(member).Error; err != nil {
		// A concurrent insert can still win the race; the unique index makes
		// that a duplicate-key error, not a duplicate row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
