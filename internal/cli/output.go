package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// SubmitResult mirrors the API submit response
type SubmitResult struct {
	Message    string `json:"message"`
	Outcome    string `json:"outcome"`
	PlayerName string `json:"player_name,omitempty"`
}

// HealthResult mirrors the API health response
type HealthResult struct {
	Status string `json:"status"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
		return
	}

	switch v := data.(type) {
	case SubmitResult:
		// an authenticated result has no message; the game banner follows it
		if v.Message != "" {
			fmt.Fprintln(o.out, v.Message)
		}
	case HealthResult:
		fmt.Fprintf(o.out, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(o.errOut, string(data))
		return
	}
	fmt.Fprintf(o.errOut, "Error: %s\n", err)
}

// GameWriter returns where the game banner goes. In json mode stdout only
// carries result documents, so the banner is sent to stderr.
func (o *Output) GameWriter() io.Writer {
	if o.format == "json" {
		return o.errOut
	}
	return o.out
}

// Prompt writes an input prompt. Prompts are suppressed in json mode so
// stdout stays machine-readable.
func (o *Output) Prompt(label string) {
	if o.format == "json" {
		return
	}
	fmt.Fprintf(o.out, "%s: ", label)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
