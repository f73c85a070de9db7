package request_models

import "encoding/json"

// MeetingWebhookRequest is the payload posted by the external automation
// pipeline once a recording has been transcribed and summarized. Several
// fields arrive under more than one key depending on the workflow version,
// so every alias is declared and normalization happens in the service.
type MeetingWebhookRequest struct {
	EventID string `json:"event_id"`

	Title string `json:"title"`
	Date  string `json:"date"`

	Mom     json.RawMessage `json:"mom"`
	Minutes json.RawMessage `json:"minutes"`
	Summary json.RawMessage `json:"summary"`

	Tasks []WebhookTask `json:"tasks"`

	Participants []WebhookParticipant `json:"participants"`
	Attendees    []WebhookParticipant `json:"attendees"`

	ProjectManagerID string `json:"project_manager_id"`
}

type WebhookTask struct {
	Title       string `json:"title"`
	Task        string `json:"task"`
	Description string `json:"description"`
	Details     string `json:"details"`
	DueDate     string `json:"due_date"`
	DueDateAlt  string `json:"dueDate"`
	Assignee    string `json:"assignee"`
	Owner       string `json:"owner"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type WebhookParticipant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
