package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"minutely/internal/models/db_models"
	"minutely/internal/models/request_models"
	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	mem "minutely/pkg/memcache"
	"minutely/pkg/utils"
)

const dedupeWindow = 24 * time.Hour

type WebhookServiceInterface interface {
	// Ingest materializes one processed meeting from the automation pipeline:
	// the meeting row first (fatal on failure), then tasks with best-effort
	// owner matching (non-fatal), then unseen participants as team members.
	Ingest(ctx context.Context, req request_models.MeetingWebhookRequest) (*response_models.WebhookIngestResponse, error)
}

type WebhookService struct {
	meetingRepo repositories.MeetingRepository
	taskRepo    repositories.TaskRepository
	teamRepo    repositories.TeamMemberRepository
	dedupe      mem.EventDedupeStore
	now         func() time.Time
}

func NewWebhookService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	teamRepo repositories.TeamMemberRepository,
	dedupe mem.EventDedupeStore,
) WebhookServiceInterface {
	return &WebhookService{
		meetingRepo: meetingRepo,
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		dedupe:      dedupe,
		now:         time.Now,
	}
}

func (s *WebhookService) Ingest(ctx context.Context, req request_models.MeetingWebhookRequest) (*response_models.WebhookIngestResponse, error) {
	// The pipeline retries on timeouts; absorb redeliveries before writing.
	if req.EventID != "" && s.dedupe != nil {
		if !s.dedupe.MarkOnce(req.EventID, dedupeWindow) {
			log.Printf("webhook: duplicate delivery %s ignored", req.EventID)
			return &response_models.WebhookIngestResponse{Success: true, Duplicate: true}, nil
		}
	}

	meeting := s.buildMeeting(req)
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		log.Printf("webhook: meeting insert failed: %v", err)
		return nil, utils.ErrPersistenceError
	}

	participants := req.Participants
	if len(participants) == 0 {
		participants = req.Attendees
	}

	membersCreated := s.createTeamMembers(ctx, participants, req.ProjectManagerID)

	members, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		log.Printf("webhook: roster load failed, tasks will be unassigned: %v", err)
		members = nil
	}

	tasks := s.buildTasks(req.Tasks, meeting.ID, members)
	if err := s.taskRepo.BulkCreate(ctx, tasks); err != nil {
		// The meeting stays; the same payload can be replayed to recover.
		log.Printf("webhook: task insert failed for meeting %s: %v", meeting.ID, err)
		tasks = nil
	}

	return &response_models.WebhookIngestResponse{
		Success:            true,
		Meeting:            meetingToResponse(meeting),
		TasksCreated:       len(tasks),
		TeamMembersCreated: membersCreated,
	}, nil
}

func (s *WebhookService) buildMeeting(req request_models.MeetingWebhookRequest) *db_models.Meeting {
	now := s.now()

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Meeting %s", now.Format("1/2/2006"))
	}

	meetingDate := now.Unix()
	if t, ok := utils.ParseFlexibleTime(req.Date); ok {
		meetingDate = t.Unix()
	}

	// The minutes blob arrives under several aliases depending on the
	// workflow version.
	var mom datatypes.JSON
	switch {
	case len(req.Mom) > 0:
		mom = datatypes.JSON(req.Mom)
	case len(req.Minutes) > 0:
		mom = datatypes.JSON(req.Minutes)
	case len(req.Summary) > 0:
		mom = datatypes.JSON(req.Summary)
	}

	var attendeeNames []string
	for _, p := range append(req.Participants, req.Attendees...) {
		if p.Name != "" {
			attendeeNames = append(attendeeNames, p.Name)
		}
	}

	return &db_models.Meeting{
		Title:         title,
		MeetingDate:   meetingDate,
		Mom:           mom,
		AttendeeNames: attendeeNames,
	}
}

func (s *WebhookService) buildTasks(entries []request_models.WebhookTask, meetingID uuid.UUID, members []db_models.TeamMember) []db_models.Task {
	tasks := make([]db_models.Task, 0, len(entries))
	for _, entry := range entries {
		title := firstNonEmpty(entry.Title, entry.Task, "Untitled Task")
		description := firstNonEmpty(entry.Description, entry.Details)
		assignee := firstNonEmpty(entry.Assignee, entry.Owner, "Unassigned")
		status := firstNonEmpty(entry.Status, "Pending")
		priority := firstNonEmpty(entry.Priority, "medium")

		var dueDate *int64
		if t, ok := utils.ParseFlexibleTime(firstNonEmpty(entry.DueDate, entry.DueDateAlt)); ok {
			d := t.Unix()
			dueDate = &d
		}

		tasks = append(tasks, db_models.Task{
			MeetingID:     meetingID,
			Task:          title,
			Dependencies:  description,
			Owner:         assignee,
			OwnerMemberID: MatchOwner(members, assignee),
			Status:        status,
			Priority:      priority,
			DueDate:       dueDate,
		})
	}
	return tasks
}

func (s *WebhookService) createTeamMembers(ctx context.Context, participants []request_models.WebhookParticipant, projectManagerID string) int {
	managerID, err := uuid.Parse(projectManagerID)
	if projectManagerID == "" || err != nil {
		return 0
	}

	created := 0
	for _, p := range participants {
		if p.Name == "" || p.Email == "" {
			continue
		}
		member := &db_models.TeamMember{
			Name:             p.Name,
			Email:            p.Email,
			Role:             firstNonEmpty(p.Role, "Team Member"),
			ProjectManagerID: managerID,
		}
		inserted, err := s.teamRepo.FirstOrCreateByEmail(ctx, member)
		if err != nil {
			log.Printf("webhook: team member insert failed for %s: %v", p.Email, err)
			continue
		}
		if inserted {
			created++
		}
	}
	return created
}

func meetingToResponse(meeting *db_models.Meeting) *response_models.MeetingResponse {
	return &response_models.MeetingResponse{
		ID:            meeting.ID.String(),
		Title:         meeting.Title,
		MeetingDate:   meeting.MeetingDate,
		Mom:           []byte(meeting.Mom),
		AttendeeNames: meeting.AttendeeNames,
		CreatedAt:     meeting.CreatedAt,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
