package tools

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKubectlExecAskModeBlocksMutatingVerbs(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{name: "delete", command: "kubectl delete pod payments-0 -n prod"},
		{name: "apply", command: "kubectl apply -f deploy.yaml"},
		{name: "scale", command: "kubectl scale deployment payments --replicas=0"},
		{name: "drain", command: "kubectl drain node-1 --ignore-daemonsets"},
		{name: "exec", command: "kubectl exec payments-0 -- sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: "deleted"}
			r := newTestRegistry(t, runner)

			result := r.Execute(context.Background(), "kubectl_exec",
				map[string]any{"command": tt.command},
				Context{UserID: "u1", Mode: ModeAsk})

			out := decode(t, result)
			assert.Equal(t, true, out["error"])
			assert.Equal(t, CodeReadOnlyMode, out["code"])
			assert.Empty(t, runner.calls, "no process may be spawned in ask mode")
		})
	}
}

func TestKubectlExecAskModeAllowsInspection(t *testing.T) {
	runner := &fakeRunner{out: "NAME READY STATUS"}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "kubectl_exec",
		map[string]any{"command": "kubectl get pods -n prod"},
		Context{UserID: "u1", Mode: ModeAsk})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"kubectl", "get", "pods", "-n", "prod"}, runner.calls[0])
}

func TestKubectlExecAgentModeRunsMutatingVerbs(t *testing.T) {
	runner := &fakeRunner{out: "pod deleted"}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "kubectl_exec",
		map[string]any{"command": "kubectl delete pod payments-0 -n prod"},
		Context{UserID: "u1", Mode: ModeAgent})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	require.Len(t, runner.calls, 1)
}

func TestCloudExecAskModeBlocksMutatingCommands(t *testing.T) {
	runner := &fakeRunner{}
	r := newTestRegistry(t, runner)

	// The verb hides inside a compound action word.
	result := r.Execute(context.Background(), "cloud_exec",
		map[string]any{"provider": "aws", "command": "aws ec2 terminate-instances --instance-ids i-0abc"},
		Context{UserID: "u1", Mode: ModeAsk})

	out := decode(t, result)
	assert.Equal(t, true, out["error"])
	assert.Equal(t, CodeReadOnlyMode, out["code"])
	assert.Empty(t, runner.calls)
}

func TestCloudExecAskModeAllowsDescribe(t *testing.T) {
	runner := &fakeRunner{out: "i-0abc running"}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "cloud_exec",
		map[string]any{"provider": "aws", "command": "aws ec2 describe-instances --filters Name=instance-state-name,Values=running"},
		Context{UserID: "u1", Mode: ModeAsk})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	require.Len(t, runner.calls, 1)
}

func TestIaCChdirPrecedesSubcommand(t *testing.T) {
	runner := &fakeRunner{out: "Apply complete!"}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "iac_tool",
		map[string]any{"action": "apply", "dir": "envs/prod"},
		Context{UserID: "u1", Mode: ModeAgent})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	require.Len(t, runner.calls, 1)
	assert.Equal(t,
		[]string{"terraform", "-chdir=envs/prod", "apply", "-no-color", "-auto-approve"},
		runner.calls[0])
}

func TestIaCPlanWithoutDir(t *testing.T) {
	runner := &fakeRunner{out: "No changes."}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "iac_tool",
		map[string]any{"action": "plan"},
		Context{UserID: "u1", Mode: ModeAgent})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"terraform", "plan", "-no-color"}, runner.calls[0])
}

func jenkinsRegistry(t *testing.T, client *http.Client) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r, Deps{
		Runner:     &fakeRunner{},
		Runbooks:   fakeRunbooks{},
		Incidents:  fakeIncidents{},
		HTTPClient: client,
	}))
	return r
}

func TestPipelineCtlJoinsJenkinsUserAndToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	r := jenkinsRegistry(t, srv.Client())
	secrets := fakeSecrets{
		"jenkins_url":   srv.URL,
		"jenkins_user":  "aurora-bot",
		"jenkins_token": "11abcdef",
	}

	result := r.Execute(context.Background(), "pipeline_ctl",
		map[string]any{"action": "trigger", "job": "deploy-payments"},
		Context{UserID: "u1", Mode: ModeAgent, Secrets: secrets})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("aurora-bot:11abcdef"))
	assert.Equal(t, want, gotAuth)
}

func TestPipelineCtlAcceptsPreJoinedCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := jenkinsRegistry(t, srv.Client())
	secrets := fakeSecrets{
		"jenkins_url":   srv.URL,
		"jenkins_token": "ops:22fedcba", // pre-joined user:apitoken pair
	}

	result := r.Execute(context.Background(), "pipeline_ctl",
		map[string]any{"action": "trigger", "job": "deploy-payments"},
		Context{UserID: "u1", Mode: ModeAgent, Secrets: secrets})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("ops:22fedcba"))
	assert.Equal(t, want, gotAuth)
}

func TestPipelineCtlRequiresUsername(t *testing.T) {
	r := jenkinsRegistry(t, http.DefaultClient)
	secrets := fakeSecrets{
		"jenkins_url":   "https://jenkins.internal",
		"jenkins_token": "bare-token",
	}

	result := r.Execute(context.Background(), "pipeline_ctl",
		map[string]any{"action": "trigger", "job": "deploy-payments"},
		Context{UserID: "u1", Mode: ModeAgent, Secrets: secrets})

	out := decode(t, result)
	assert.Equal(t, true, out["error"])
	assert.Contains(t, out["message"], "jenkins credentials unavailable")
}
