package response_models

// DashboardSummary feeds the landing dashboard in one round trip.
type DashboardSummary struct {
	Meetings     int64 `json:"meetings"`
	OpenTasks    int64 `json:"open_tasks"`
	TeamMembers  int64 `json:"team_members"`
	Credits      int   `json:"credits"`
	TrialActive  bool  `json:"trial_active"`
	TrialEndDate *int64 `json:"trial_end_date,omitempty"`
}
