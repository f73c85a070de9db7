package request_models

type CreateTeamMemberRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type UpdateTeamMemberRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending 'In Progress' Completed"`
}
