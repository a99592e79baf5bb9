package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Errors  map[string][]string `json:"errors"`
}

type HealthResponse struct {
	Status string `json:"status,omitempty"`
}

type SuggestedTasksResponse struct {
	Tasks []SuggestedTodo `json:"tasks"`
}

type ConfirmTasksResponse struct {
	Created int `json:"created"`
}
