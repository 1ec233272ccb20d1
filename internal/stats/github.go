// Package stats fetches decorative profile numbers from public developer APIs.
// Every fetch is best-effort: the dashboard works the same when they fail.
package stats

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

// GitHubProfile is the subset of the public user record the dashboard looks at.
type GitHubProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

type GitHubFetcher interface {
	FetchProfile(ctx context.Context, login string) (*GitHubProfile, error)
}

// GitHubClient reads user profiles through the GitHub REST API.
type GitHubClient struct {
	client *api.RESTClient
}

// NewGitHubClient builds a REST client for github.com. An empty token lets go-gh
// fall back to GH_TOKEN or the gh CLI's stored credentials. transport may be nil.
func NewGitHubClient(token string, transport http.RoundTripper) (*GitHubClient, error) {
	client, err := api.NewRESTClient(api.ClientOptions{
		Host:      "github.com",
		AuthToken: token,
		Timeout:   10 * time.Second,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub client: %w", err)
	}
	return &GitHubClient{client: client}, nil
}

func (c *GitHubClient) FetchProfile(ctx context.Context, login string) (*GitHubProfile, error) {
	var profile GitHubProfile
	err := c.client.DoWithContext(ctx, http.MethodGet, "users/"+url.PathEscape(login), nil, &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve GitHub profile %s: %w", login, err)
	}
	return &profile, nil
}
