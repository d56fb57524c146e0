package api

// AbortResponse acknowledges an abort request. The actual termination is
// observed on the event stream as error{cancelled} followed by done.
type AbortResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// ApprovalResponse acknowledges a delivered approval decision.
type ApprovalResponse struct {
	TaskID   string `json:"task_id"`
	CallID   string `json:"call_id"`
	Decision string `json:"decision"`
}

// ResolveResponse reports the new resolved state of a task.
type ResolveResponse struct {
	TaskID   string `json:"task_id"`
	Resolved bool   `json:"resolved"`
}

// HealthCheck is one component's health within the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /api/v1/health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
