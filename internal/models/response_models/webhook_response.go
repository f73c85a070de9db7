package response_models

type WebhookIngestResponse struct {
	Success            bool             `json:"success"`
	Duplicate          bool             `json:"duplicate,omitempty"`
	Meeting            *MeetingResponse `json:"meeting,omitempty"`
	TasksCreated       int              `json:"tasks_created"`
	TeamMembersCreated int              `json:"team_members_created"`
}
