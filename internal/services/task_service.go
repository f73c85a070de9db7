package services

import (
	"context"

	"minutely/internal/models/db_models"
	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

type TaskServiceInterface interface {
	ListTasksByMeeting(ctx context.Context, meetingID string) ([]response_models.TaskResponse, error)

	// UpdateTaskStatus is the single UI-driven task mutation; tasks are
	// otherwise owned by webhook ingestion.
	UpdateTaskStatus(ctx context.Context, taskID string, status string) error
}

type TaskService struct {
	taskRepo    repositories.TaskRepository
	meetingRepo repositories.MeetingRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, meetingRepo repositories.MeetingRepository) TaskServiceInterface {
	return &TaskService{
		taskRepo:    taskRepo,
		meetingRepo: meetingRepo,
	}
}

func (t *TaskService) ListTasksByMeeting(ctx context.Context, meetingID string) ([]response_models.TaskResponse, error) {
	meeting, err := t.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if meeting == nil {
		return nil, utils.ErrMeetingNotFound
	}

	tasks, err := t.taskRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out, nil
}

func (t *TaskService) UpdateTaskStatus(ctx context.Context, taskID string, status string) error {
	task, err := t.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if task == nil {
		return utils.ErrTaskNotFound
	}

	if err := t.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func taskToResponse(task *db_models.Task) response_models.TaskResponse {
	resp := response_models.TaskResponse{
		ID:           task.ID.String(),
		MeetingID:    task.MeetingID.String(),
		Task:         task.Task,
		Dependencies: task.Dependencies,
		Owner:        task.Owner,
		Status:       task.Status,
		Priority:     task.Priority,
		DueDate:      task.DueDate,
	}
	if task.OwnerMemberID != nil {
		id := task.OwnerMemberID.String()
		resp.OwnerMemberID = &id
	}
	return resp
}
