package request

// SubmitRequest is the request body for a register or login submission
type SubmitRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}
