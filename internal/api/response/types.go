package response

import "github.com/mcoot/kartgate/internal/services/auth"

// SubmitResponse is the response for a submission.
// PlayerName is only present when the outcome is "authenticated".
type SubmitResponse struct {
	Message    string `json:"message"`
	Outcome    string `json:"outcome"`
	PlayerName string `json:"player_name,omitempty"`
}

// SubmitResponseFromResult converts an auth.Result to a SubmitResponse
func SubmitResponseFromResult(r auth.Result) SubmitResponse {
	return SubmitResponse{
		Message:    r.Message,
		Outcome:    r.Outcome.String(),
		PlayerName: r.PlayerName,
	}
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
