package models

// InvestigateRequest is the body of POST /api/v1/investigate.
type InvestigateRequest struct {
	Prompt          string            `json:"prompt"`
	Context         string            `json:"context,omitempty"` // kubecontext name
	Model           string            `json:"model,omitempty"`   // LLM provider override
	ResourceContext map[string]string `json:"resource_context,omitempty"`
	LogContext      map[string]string `json:"log_context,omitempty"`
}

// ApprovalDecision is the client's verdict on a gated tool call.
type ApprovalDecision string

const (
	DecisionApprove           ApprovalDecision = "approve"
	DecisionApproveForSession ApprovalDecision = "approve_for_session"
	DecisionReject            ApprovalDecision = "reject"
)

// Valid reports whether d is one of the known decisions.
func (d ApprovalDecision) Valid() bool {
	switch d {
	case DecisionApprove, DecisionApproveForSession, DecisionReject:
		return true
	}
	return false
}

// ApprovalRequest is the body of POST /api/v1/investigate/{task_id}/approval.
type ApprovalRequest struct {
	CallID   string           `json:"call_id"`
	Decision ApprovalDecision `json:"decision"`
	Note     string           `json:"note,omitempty"`
}
