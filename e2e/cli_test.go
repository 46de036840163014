package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/kartgate/internal/api"
	"github.com/mcoot/kartgate/internal/cli"
	"github.com/mcoot/kartgate/internal/factory"
	"github.com/mcoot/kartgate/internal/model"
	"github.com/mcoot/kartgate/internal/services/auth"
	"github.com/mcoot/kartgate/internal/testutil"
	"github.com/mcoot/kartgate/internal/web"
)

// cliResult holds the captured streams of one command run
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command in-process with the given stdin
func runCLI(stdin string, args ...string) cliResult {
	var stdout, stderr bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// startTestServer runs the API and web routers behind a real HTTP listener
func startTestServer(t *testing.T) (*httptest.Server, *factory.App) {
	t.Helper()

	logger := testutil.NopLogger()
	app := factory.New(factory.Config{Logger: logger})

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthController: app.AuthController,
	}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:         logger,
		AuthController: app.AuthController,
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, app
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

// Interactive login

func TestLoginRegisterThenLogin(t *testing.T) {
	res := runCLI(lines(
		"register", "alice", "secret",
		"login", "alice", "wrong",
		"login", "alice", "secret",
	), "login")
	require.NoError(t, res.err, res.stderr)

	assert.Contains(t, res.stdout, "User: ")
	assert.Contains(t, res.stdout, "Pass: ")
	assert.Contains(t, res.stdout, auth.MsgRegistered+"\n")
	assert.Contains(t, res.stdout, auth.MsgInvalidCredentials+"\n")
	assert.True(t, strings.HasSuffix(res.stdout, "GbaKart - Player: alice\n"), res.stdout)
}

func TestLoginStopsAtFirstSuccess(t *testing.T) {
	res := runCLI(lines(
		"register", "alice", "secret",
		"login", "alice", "secret",
		"register", "bob", "never-read",
	), "login")
	require.NoError(t, res.err)

	assert.Equal(t, 1, strings.Count(res.stdout, "GbaKart - Player: "))
	assert.Equal(t, 1, strings.Count(res.stdout, auth.MsgRegistered))
}

func TestLoginEmptyRegistration(t *testing.T) {
	res := runCLI(lines("register", "", "secret"), "login")

	assert.ErrorIs(t, res.err, model.ErrInputClosed)
	assert.Contains(t, res.stdout, auth.MsgEmptyFields)
}

func TestLoginUnknownActionReprompts(t *testing.T) {
	res := runCLI(lines(
		"dance",
		"register", "alice", "secret",
		"login", "alice", "secret",
	), "login")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "Error: unknown action")
	assert.Contains(t, res.stdout, "GbaKart - Player: alice")
}

func TestLoginInputClosed(t *testing.T) {
	res := runCLI("", "login")

	assert.ErrorIs(t, res.err, model.ErrInputClosed)
}

func TestLoginJSONOutput(t *testing.T) {
	res := runCLI(lines("login", "bob", "x"), "login", "-o", "json")
	assert.ErrorIs(t, res.err, model.ErrInputClosed)

	var result cli.SubmitResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &result), res.stdout)
	assert.Equal(t, cli.SubmitResult{Message: auth.MsgInvalidCredentials, Outcome: "none"}, result)
}

// decodeResults reads every JSON document written to stdout
func decodeResults(t *testing.T, stdout string) []cli.SubmitResult {
	t.Helper()
	var results []cli.SubmitResult
	dec := json.NewDecoder(strings.NewReader(stdout))
	for dec.More() {
		var result cli.SubmitResult
		require.NoError(t, dec.Decode(&result), stdout)
		results = append(results, result)
	}
	return results
}

func TestLoginJSONOutputSuccess(t *testing.T) {
	res := runCLI(lines(
		"register", "alice", "secret",
		"login", "alice", "secret",
	), "login", "-o", "json")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, []cli.SubmitResult{
		{Message: auth.MsgRegistered, Outcome: "registered"},
		{Outcome: "authenticated", PlayerName: "alice"},
	}, decodeResults(t, res.stdout))
	assert.NotContains(t, res.stdout, "GbaKart - Player:")
	assert.Equal(t, "GbaKart - Player: alice\n", res.stderr)
}

func TestInvalidOutputFormat(t *testing.T) {
	res := runCLI("", "login", "-o", "yaml")

	assert.ErrorContains(t, res.err, "invalid output format")
}

// Remote commands

func TestHealth(t *testing.T) {
	server, _ := startTestServer(t)

	res := runCLI("", "--server", server.URL, "health")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, "Status: ok\n", res.stdout)
}

func TestHealthReportsUnhealthyStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	t.Cleanup(server.Close)

	res := runCLI("", "--server", server.URL, "health")

	assert.ErrorContains(t, res.err, `"degraded"`)
	assert.Equal(t, "Status: degraded\n", res.stdout)
}

func TestHealthTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	res := runCLI("", "--server", server.URL, "health", "--timeout", "50ms")

	assert.ErrorIs(t, res.err, context.DeadlineExceeded)
	assert.Empty(t, res.stdout)
}

func TestSubmitRegisterThenLogin(t *testing.T) {
	server, app := startTestServer(t)

	res := runCLI("", "--server", server.URL, "submit", "register", "--user", "alice", "--pass", "secret")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, auth.MsgRegistered+"\n", res.stdout)
	assert.True(t, app.Storage.Verify("alice", "secret"))

	res = runCLI("", "--server", server.URL, "submit", "login", "--user", "alice", "--pass", "secret")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "GbaKart - Player: alice\n", res.stdout)
}

func TestSubmitJSONOutputSuccess(t *testing.T) {
	server, app := startTestServer(t)
	app.Storage.Register("alice", "secret")

	res := runCLI("", "--server", server.URL, "-o", "json", "submit", "login", "--user", "alice", "--pass", "secret")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, []cli.SubmitResult{
		{Outcome: "authenticated", PlayerName: "alice"},
	}, decodeResults(t, res.stdout))
	assert.Equal(t, "GbaKart - Player: alice\n", res.stderr)
}

func TestSubmitLoginFailure(t *testing.T) {
	server, _ := startTestServer(t)

	res := runCLI("", "--server", server.URL, "submit", "login", "--user", "bob", "--pass", "x")
	require.NoError(t, res.err)

	assert.Equal(t, auth.MsgInvalidCredentials+"\n", res.stdout)
}

func TestSubmitUnknownAction(t *testing.T) {
	res := runCLI("", "submit", "logout")

	assert.ErrorIs(t, res.err, model.ErrUnknownAction)
}
