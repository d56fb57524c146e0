package llm

import (
	"errors"
	"fmt"
	"net"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go/v2"

	"github.com/agentkube/investigator/pkg/agent"
)

// classifyError converts a provider error into an ErrorChunk. Rate limits,
// server errors and transport failures are retryable; auth and request
// validation failures are not.
func classifyError(err error) *agent.ErrorChunk {
	var status int
	var anthErr *sdk.Error
	var oaiErr *openai.Error
	switch {
	case errors.As(err, &anthErr):
		status = anthErr.StatusCode
	case errors.As(err, &oaiErr):
		status = oaiErr.StatusCode
	}

	if status > 0 {
		return &agent.ErrorChunk{
			Message:   err.Error(),
			Code:      fmt.Sprintf("http_%d", status),
			Retryable: status == 429 || status == 408 || status >= 500,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &agent.ErrorChunk{Message: err.Error(), Code: "network", Retryable: true}
	}

	// Transport-level failures without a status (connection reset, EOF) are
	// worth one more attempt.
	return &agent.ErrorChunk{Message: err.Error(), Code: "stream", Retryable: true}
}
