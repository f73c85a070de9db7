package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minutely/internal/models/db_models"
	"minutely/internal/models/request_models"
	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

type TeamServiceInterface interface {
	ListMembers(ctx context.Context, managerID uuid.UUID) ([]response_models.TeamMemberResponse, error)
	CreateMember(ctx context.Context, managerID uuid.UUID, req request_models.CreateTeamMemberRequest) (*response_models.TeamMemberResponse, error)
	UpdateMember(ctx context.Context, managerID uuid.UUID, memberID string, req request_models.UpdateTeamMemberRequest) error
	DeleteMember(ctx context.Context, managerID uuid.UUID, memberID string) error
}

type TeamService struct {
	teamRepo repositories.TeamMemberRepository
}

func NewTeamService(teamRepo repositories.TeamMemberRepository) TeamServiceInterface {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

func (t *TeamService) ListMembers(ctx context.Context, managerID uuid.UUID) ([]response_models.TeamMemberResponse, error) {
	members, err := t.teamRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, response_models.TeamMemberResponse{
			ID:    m.ID.String(),
			Name:  m.Name,
			Email: m.Email,
			Role:  m.Role,
		})
	}
	return out, nil
}

func (t *TeamService) CreateMember(ctx context.Context, managerID uuid.UUID, req request_models.CreateTeamMemberRequest) (*response_models.TeamMemberResponse, error) {
	role := req.Role
	if role == "" {
		role = "Team Member"
	}

	member := &db_models.TeamMember{
		Name:             req.Name,
		Email:            req.Email,
		Role:             role,
		ProjectManagerID: managerID,
	}

	if err := t.teamRepo.Create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TeamMemberResponse{
		ID:    member.ID.String(),
		Name:  member.Name,
		Email: member.Email,
		Role:  member.Role,
	}, nil
}

func (t *TeamService) UpdateMember(ctx context.Context, managerID uuid.UUID, memberID string, req request_models.UpdateTeamMemberRequest) error {
	member, err := t.teamRepo.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil || member.ProjectManagerID != managerID {
		return utils.ErrMemberNotFound
	}

	member.Name = req.Name
	member.Email = req.Email
	if req.Role != "" {
		member.Role = req.Role
	}

	if err := t.teamRepo.Update(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TeamService) DeleteMember(ctx context.Context, managerID uuid.UUID, memberID string) error {
	member, err := t.teamRepo.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil || member.ProjectManagerID != managerID {
		return utils.ErrMemberNotFound
	}

	if err := t.teamRepo.Delete(ctx, memberID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
