package services

import (
	"context"

	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

// Meetings are produced by webhook ingestion only; this service is the
// read-only view the dashboard consumes.
type MeetingServiceInterface interface {
	ListMeetings(ctx context.Context, page int, pageSize int) ([]response_models.MeetingResponse, error)
	GetMeeting(ctx context.Context, id string) (*response_models.MeetingResponse, error)
}

type MeetingService struct {
	meetingRepo repositories.MeetingRepository
}

func NewMeetingService(meetingRepo repositories.MeetingRepository) MeetingServiceInterface {
	return &MeetingService{
		meetingRepo: meetingRepo,
	}
}

func (m *MeetingService) ListMeetings(ctx context.Context, page int, pageSize int) ([]response_models.MeetingResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	meetings, err := m.meetingRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		out = append(out, *meetingToResponse(&meetings[i]))
	}
	return out, nil
}

func (m *MeetingService) GetMeeting(ctx context.Context, id string) (*response_models.MeetingResponse, error) {
	meeting, err := m.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if meeting == nil {
		return nil, utils.ErrMeetingNotFound
	}
	return meetingToResponse(meeting), nil
}
