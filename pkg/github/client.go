package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API for repository license lookups.
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub client using the GITHUB_TOKEN environment variable
func NewClient() (*Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is required")
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	return &Client{
		client: client,
		ctx:    ctx,
	}, nil
}

// RepositoryLicense returns the SPDX identifier GitHub detected for a
// repository, or "" when GitHub could not classify the license.
func (c *Client) RepositoryLicense(owner, repo string) (string, error) {
	license, _, err := c.client.Repositories.License(c.ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to fetch license for %s/%s: %w", owner, repo, err)
	}

	spdx := license.GetLicense().GetSPDXID()
	if spdx == "NOASSERTION" {
		return "", nil
	}
	return spdx, nil
}

// ParseRepo extracts the owner and repository from a dependency name of the
// form github.com/<owner>/<repo>[/...]. ok is false for anything else.
func ParseRepo(name string) (owner, repo string, ok bool) {
	parts := strings.Split(name, "/")
	if len(parts) < 3 || parts[0] != "github.com" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
