package response_models

import "encoding/json"

type MeetingResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	MeetingDate   int64           `json:"meeting_date"`
	Mom           json.RawMessage `json:"mom,omitempty"`
	AttendeeNames []string        `json:"attendee_names,omitempty"`
	CreatedAt     int64           `json:"created_at"`
}

type TaskResponse struct {
	ID            string  `json:"id"`
	MeetingID     string  `json:"meeting_id"`
	Task          string  `json:"task"`
	Dependencies  string  `json:"dependencies"`
	Owner         string  `json:"owner"`
	OwnerMemberID *string `json:"owner_member_id,omitempty"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	DueDate       *int64  `json:"due_date,omitempty"`
}

type TeamMemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
