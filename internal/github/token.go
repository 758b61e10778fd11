package github

import (
	"context"
	"errors"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"
)

type AuthTokenSource string

const (
	AuthTokenSourceExplicit AuthTokenSource = "explicit"
	AuthTokenSourceEnv      AuthTokenSource = "env:GITHUB_TOKEN"
	AuthTokenSourceGHEnv    AuthTokenSource = "env:GH_TOKEN"
	AuthTokenSourceGitHubCL AuthTokenSource = "gh"
)

const defaultHost = "github.com"

// ghTimeout bounds `gh auth token` when ctx carries no deadline.
const ghTimeout = 5 * time.Second

// ResolveAuthToken resolves the token used for code scanning uploads. The
// token needs the security_events scope (or contents:read and
// security-events:write for fine-grained tokens). apiURL selects the gh host
// for GitHub Enterprise Server; empty means github.com.
//
// Precedence:
//  1. provided (if non-empty)
//  2. GITHUB_TOKEN env var, as set in GitHub Actions
//  3. GH_TOKEN env var
//  4. GitHub CLI: `gh auth token -h <host>`
//
// It never prints the token. No token at all is not an error.
func ResolveAuthToken(ctx context.Context, provided, apiURL string) (token string, source AuthTokenSource, err error) {
	if tok := strings.TrimSpace(provided); tok != "" {
		return tok, AuthTokenSourceExplicit, nil
	}

	for _, env := range []struct {
		name   string
		source AuthTokenSource
	}{
		{"GITHUB_TOKEN", AuthTokenSourceEnv},
		{"GH_TOKEN", AuthTokenSourceGHEnv},
	} {
		if tok := strings.TrimSpace(os.Getenv(env.name)); tok != "" {
			return tok, env.source, nil
		}
	}

	tok, ok, err := tokenFromGitHubCLI(ctx, TokenHost(apiURL))
	if err != nil || !ok {
		return "", "", err
	}
	return tok, AuthTokenSourceGitHubCL, nil
}

// TokenHost maps an API root to the host gh keeps credentials under.
func TokenHost(apiURL string) string {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return defaultHost
	}
	u, err := url.Parse(apiURL)
	if err != nil || u.Hostname() == "" {
		return defaultHost
	}
	host := u.Hostname()
	if host == "api.github.com" {
		return defaultHost
	}
	return host
}

func tokenFromGitHubCLI(ctx context.Context, host string) (token string, ok bool, err error) {
	if _, lookErr := exec.LookPath("gh"); lookErr != nil {
		return "", false, nil
	}

	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, ghTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, "gh", "auth", "token", "-h", host)
	cmd.Env = withEnv(os.Environ(), "GH_PAGER", "cat")
	out, runErr := cmd.Output()
	if runErr != nil {
		if cmdCtx.Err() != nil {
			return "", false, cmdCtx.Err()
		}
		// Not logged in (or any other gh failure) means no token. gh's own
		// output is never surfaced.
		return "", false, nil
	}

	tok := strings.TrimSpace(string(out))
	if tok == "" {
		return "", false, nil
	}
	if strings.ContainsAny(tok, " \t\n\r") {
		return "", false, errors.New("invalid token returned by gh: contains whitespace")
	}
	return tok, true, nil
}

// withEnv returns env with key set to value exactly once.
func withEnv(env []string, key, value string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env)+1)
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			out = append(out, entry)
		}
	}
	return append(out, prefix+value)
}
