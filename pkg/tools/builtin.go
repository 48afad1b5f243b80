package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Deps are the external collaborators the built-in tools need. Everything
// is an interface so tests can run the catalog without cloud access.
type Deps struct {
	Runner   CommandRunner
	Runbooks RunbookFetcher
	Incidents IncidentReader
	HTTPClient *http.Client
}

// RunbookFetcher retrieves runbook content by URL.
type RunbookFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// IncidentReader exposes incident details to the incident_query tool.
type IncidentReader interface {
	IncidentJSON(ctx context.Context, userID, incidentID string) (string, error)
}

// cloudCLIs maps the provider argument of cloud_exec to the binary the
// command must start with.
var cloudCLIs = map[string]string{
	"aws":       "aws",
	"gcp":       "gcloud",
	"azure":     "az",
	"ovh":       "ovhcli",
	"scaleway":  "scw",
	"tailscale": "tailscale",
}

// mutatingVerbs are command words that change external state. Detection is
// fail-closed: ambiguous words like "rollout" and "run" count as mutating,
// so ask mode stays read-only at the price of refusing a few inspection
// commands.
var mutatingVerbs = map[string]bool{
	"apply": true, "create": true, "delete": true, "patch": true,
	"replace": true, "edit": true, "scale": true, "drain": true,
	"cordon": true, "uncordon": true, "taint": true, "evict": true,
	"label": true, "annotate": true, "expose": true, "rollout": true,
	"run": true, "exec": true, "set": true, "terminate": true,
	"reboot": true, "restart": true, "stop": true, "start": true,
	"kill": true, "destroy": true, "update": true, "modify": true,
	"put": true, "write": true, "attach": true, "detach": true,
	"associate": true, "disassociate": true, "authorize": true,
	"revoke": true, "release": true, "purge": true, "resize": true,
	"rotate": true, "upgrade": true, "remove": true, "rm": true,
	"push": true, "merge": true, "deploy": true,
}

// isMutatingCommand reports whether any bare word of the command after the
// binary is a mutating verb. Flags and key=value tokens are skipped; AWS-style
// compound actions ("terminate-instances") are split on hyphens so the verb
// inside them is still seen.
func isMutatingCommand(fields []string) bool {
	for _, field := range fields[1:] {
		if strings.HasPrefix(field, "-") || strings.Contains(field, "=") {
			continue
		}
		for _, part := range strings.Split(strings.ToLower(field), "-") {
			if mutatingVerbs[part] {
				return true
			}
		}
	}
	return false
}

// RegisterBuiltins installs the standard tool catalog.
func RegisterBuiltins(r *Registry, deps Deps) error {
	if deps.HTTPClient == nil {
		deps.HTTPClient = http.DefaultClient
	}

	all := []*Tool{
		cloudExecTool(deps),
		kubectlExecTool(deps),
		iacTool(deps),
		scmReadTool(deps),
		scmCommitTool(deps),
		pipelineCtlTool(deps),
		runbookFetchTool(deps),
		incidentQueryTool(deps),
	}
	for _, t := range all {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func cloudExecTool(deps Deps) *Tool {
	return &Tool{
		Name:        "cloud_exec",
		Description: "Run a cloud provider CLI command (aws, gcloud, az, scw, ovhcli, tailscale) and return its output.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"provider": map[string]any{
					"type": "string",
					"enum": []any{"aws", "gcp", "azure", "ovh", "scaleway", "tailscale"},
				},
				"command": map[string]any{
					"type":        "string",
					"description": "Full CLI command including the binary name",
				},
			},
			"required": []any{"provider", "command"},
		},
		AllowedModes: []string{ModeAsk, ModeAgent},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			provider, _ := args["provider"].(string)
			command, _ := args["command"].(string)
			binary, ok := cloudCLIs[provider]
			if !ok {
				return Error("unsupported cloud provider: %s", provider), nil
			}
			fields := strings.Fields(command)
			if len(fields) == 0 || fields[0] != binary {
				return Error("command must start with %q for provider %s", binary, provider), nil
			}
			if tc.Mode == ModeAsk && isMutatingCommand(fields) {
				return ErrorCode(CodeReadOnlyMode,
					fmt.Sprintf("command %q modifies external state and is not available in ask mode", command)), nil
			}
			out, err := deps.Runner.Run(ctx, fields[0], fields[1:])
			if err != nil {
				return Error("%v\n%s", err, out), nil
			}
			return OK(map[string]any{"output": out}), nil
		},
	}
}

func kubectlExecTool(deps Deps) *Tool {
	return &Tool{
		Name:        "kubectl_exec",
		Description: "Run a kubectl command against the configured cluster and return its output.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"command": map[string]any{
					"type":        "string",
					"description": "kubectl command, e.g. 'kubectl get pods -n prod'",
				},
			},
			"required": []any{"command"},
		},
		AllowedModes: []string{ModeAsk, ModeAgent},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			command, _ := args["command"].(string)
			fields := strings.Fields(command)
			if len(fields) == 0 || fields[0] != "kubectl" {
				return Error("command must start with kubectl"), nil
			}
			if tc.Mode == ModeAsk && isMutatingCommand(fields) {
				return ErrorCode(CodeReadOnlyMode,
					fmt.Sprintf("command %q modifies external state and is not available in ask mode", command)), nil
			}
			out, err := deps.Runner.Run(ctx, fields[0], fields[1:])
			if err != nil {
				return Error("%v\n%s", err, out), nil
			}
			return OK(map[string]any{"output": out}), nil
		},
	}
}

func iacTool(deps Deps) *Tool {
	return &Tool{
		Name:        "iac_tool",
		Description: "Run an infrastructure-as-code action (plan, apply, destroy) in a workspace directory.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action": map[string]any{
					"type": "string",
					"enum": []any{"plan", "apply", "destroy"},
				},
				"dir": map[string]any{"type": "string"},
			},
			"required": []any{"action"},
		},
		RequiresConfirmation: true,
		AllowedModes:         []string{ModeAgent},
		ConfirmationMessage: func(args map[string]any) string {
			action, _ := args["action"].(string)
			return fmt.Sprintf("Run terraform %s? This may modify infrastructure.", action)
		},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			action, _ := args["action"].(string)
			dir, _ := args["dir"].(string)
			// -chdir is a terraform global option; it must precede the
			// subcommand.
			var cliArgs []string
			if dir != "" {
				cliArgs = append(cliArgs, "-chdir="+dir)
			}
			cliArgs = append(cliArgs, action, "-no-color")
			if action != "plan" {
				cliArgs = append(cliArgs, "-auto-approve")
			}
			out, err := deps.Runner.Run(ctx, "terraform", cliArgs)
			if err != nil {
				return Error("%v\n%s", err, out), nil
			}
			return OK(map[string]any{"action": action, "output": out}), nil
		},
	}
}

const bitbucketAPI = "https://api.bitbucket.org/2.0"

func scmReadTool(deps Deps) *Tool {
	return &Tool{
		Name:        "scm_read",
		Description: "Read a file from a Bitbucket repository at a given ref.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"repo": map[string]any{"type": "string", "description": "workspace/repo slug"},
				"path": map[string]any{"type": "string"},
				"ref":  map[string]any{"type": "string"},
			},
			"required": []any{"repo", "path"},
		},
		AllowedModes: []string{ModeAsk, ModeAgent},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			repo, _ := args["repo"].(string)
			path, _ := args["path"].(string)
			ref, _ := args["ref"].(string)
			if ref == "" {
				ref = "main"
			}
			token, err := tc.Secrets.Get(ctx, tc.UserID, "bitbucket_token")
			if err != nil {
				return Error("bitbucket credentials unavailable: %v", err), nil
			}
			endpoint := fmt.Sprintf("%s/repositories/%s/src/%s/%s",
				bitbucketAPI, repo, url.PathEscape(ref), path)
			body, status, err := httpGet(ctx, deps.HTTPClient, endpoint, token)
			if err != nil {
				return Error("read %s: %v", path, err), nil
			}
			if status != http.StatusOK {
				return Error("read %s: status %d", path, status), nil
			}
			return OK(map[string]any{"repo": repo, "path": path, "ref": ref, "content": body}), nil
		},
	}
}

func scmCommitTool(deps Deps) *Tool {
	return &Tool{
		Name:        "scm_commit",
		Description: "Commit a file change to a Bitbucket repository branch.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"repo":    map[string]any{"type": "string"},
				"branch":  map[string]any{"type": "string"},
				"path":    map[string]any{"type": "string"},
				"content": map[string]any{"type": "string"},
				"message": map[string]any{"type": "string"},
			},
			"required": []any{"repo", "branch", "path", "content", "message"},
		},
		RequiresConfirmation: true,
		AllowedModes:         []string{ModeAgent},
		ConfirmationMessage: func(args map[string]any) string {
			repo, _ := args["repo"].(string)
			path, _ := args["path"].(string)
			return fmt.Sprintf("Commit changes to %s in %s?", path, repo)
		},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			repo, _ := args["repo"].(string)
			branch, _ := args["branch"].(string)
			path, _ := args["path"].(string)
			content, _ := args["content"].(string)
			message, _ := args["message"].(string)

			token, err := tc.Secrets.Get(ctx, tc.UserID, "bitbucket_token")
			if err != nil {
				return Error("bitbucket credentials unavailable: %v", err), nil
			}
			form := url.Values{}
			form.Set(path, content)
			form.Set("branch", branch)
			form.Set("message", message)

			endpoint := fmt.Sprintf("%s/repositories/%s/src", bitbucketAPI, repo)
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
				strings.NewReader(form.Encode()))
			if err != nil {
				return Error("commit: %v", err), nil
			}
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := deps.HTTPClient.Do(req)
			if err != nil {
				return Error("commit: %v", err), nil
			}
			defer resp.Body.Close()
			if resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				return Error("commit: status %d: %s", resp.StatusCode, body), nil
			}
			return OK(map[string]any{"repo": repo, "branch": branch, "path": path}), nil
		},
	}
}

func pipelineCtlTool(deps Deps) *Tool {
	return &Tool{
		Name:        "pipeline_ctl",
		Description: "Trigger or stop a Jenkins pipeline job.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action": map[string]any{"type": "string", "enum": []any{"trigger", "stop"}},
				"job":    map[string]any{"type": "string"},
				"build":  map[string]any{"type": "string"},
			},
			"required": []any{"action", "job"},
		},
		RequiresConfirmation: true,
		AllowedModes:         []string{ModeAgent},
		ConfirmationMessage: func(args map[string]any) string {
			action, _ := args["action"].(string)
			job, _ := args["job"].(string)
			return fmt.Sprintf("%s pipeline job %s?", strings.ToTitle(action[:1])+action[1:], job)
		},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			action, _ := args["action"].(string)
			job, _ := args["job"].(string)
			build, _ := args["build"].(string)

			baseURL, err := tc.Secrets.Get(ctx, tc.UserID, "jenkins_url")
			if err != nil {
				return Error("jenkins credentials unavailable: %v", err), nil
			}
			token, err := tc.Secrets.Get(ctx, tc.UserID, "jenkins_token")
			if err != nil {
				return Error("jenkins credentials unavailable: %v", err), nil
			}
			// Jenkins API tokens authenticate as user:apitoken. The username
			// comes from the jenkins_user secret; a token stored as a
			// pre-joined "user:apitoken" pair works without one.
			cred := token
			if !strings.Contains(cred, ":") {
				user, userErr := tc.Secrets.Get(ctx, tc.UserID, "jenkins_user")
				if userErr != nil {
					return Error("jenkins credentials unavailable: %v", userErr), nil
				}
				cred = user + ":" + token
			}

			var endpoint string
			switch action {
			case "trigger":
				endpoint = fmt.Sprintf("%s/job/%s/build", strings.TrimRight(baseURL, "/"), url.PathEscape(job))
			case "stop":
				if build == "" {
					return Error("stop requires a build number"), nil
				}
				endpoint = fmt.Sprintf("%s/job/%s/%s/stop", strings.TrimRight(baseURL, "/"), url.PathEscape(job), build)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
			if err != nil {
				return Error("pipeline %s: %v", action, err), nil
			}
			req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(cred)))

			resp, err := deps.HTTPClient.Do(req)
			if err != nil {
				return Error("pipeline %s: %v", action, err), nil
			}
			defer resp.Body.Close()
			if resp.StatusCode >= 300 {
				return Error("pipeline %s: status %d", action, resp.StatusCode), nil
			}
			return OK(map[string]any{"action": action, "job": job}), nil
		},
	}
}

func runbookFetchTool(deps Deps) *Tool {
	return &Tool{
		Name:        "runbook_fetch",
		Description: "Fetch runbook content from a URL (wiki page or repository markdown).",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"url": map[string]any{"type": "string"},
			},
			"required": []any{"url"},
		},
		AllowedModes: []string{ModeAsk, ModeAgent},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			rawURL, _ := args["url"].(string)
			content, err := deps.Runbooks.Fetch(ctx, rawURL)
			if err != nil {
				return Error("fetch runbook: %v", err), nil
			}
			return OK(map[string]any{"url": rawURL, "content": content}), nil
		},
	}
}

func incidentQueryTool(deps Deps) *Tool {
	return &Tool{
		Name:        "incident_query",
		Description: "Look up an incident's details, correlated alerts, and investigation record.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"incident_id": map[string]any{"type": "string"},
			},
			"required": []any{"incident_id"},
		},
		AllowedModes: []string{ModeAsk, ModeAgent},
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			incidentID, _ := args["incident_id"].(string)
			out, err := deps.Incidents.IncidentJSON(ctx, tc.UserID, incidentID)
			if err != nil {
				return Error("incident lookup: %v", err), nil
			}
			return out, nil
		},
	}
}

func httpGet(ctx context.Context, client *http.Client, endpoint, token string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}
