package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context, userID uuid.UUID) (*response_models.DashboardSummary, error)
}

type DashboardService struct {
	meetingRepo repositories.MeetingRepository
	taskRepo    repositories.TaskRepository
	teamRepo    repositories.TeamMemberRepository
	creditRepo  repositories.CreditRepository
}

func NewDashboardService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	teamRepo repositories.TeamMemberRepository,
	creditRepo repositories.CreditRepository,
) DashboardServiceInterface {
	return &DashboardService{
		meetingRepo: meetingRepo,
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		creditRepo:  creditRepo,
	}
}

func (d *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*response_models.DashboardSummary, error) {
	meetings, err := d.meetingRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	openTasks, err := d.taskRepo.CountOpen(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	members, err := d.teamRepo.ListByManager(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := &response_models.DashboardSummary{
		Meetings:    meetings,
		OpenTasks:   openTasks,
		TeamMembers: int64(len(members)),
	}

	credit, err := d.creditRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if credit != nil {
		summary.Credits = credit.Credits
		summary.TrialActive = credit.IsTrialUser && !IsTrialExpired(credit, time.Now())
		summary.TrialEndDate = credit.TrialEndDate
	}

	return summary, nil
}
