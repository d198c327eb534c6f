package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alimgiray/ghprofile/internal/models"
	"github.com/alimgiray/ghprofile/pkg/config"
	"github.com/google/go-github/v57/github"
)

// GitHubService reads public user data from the GitHub REST API.
// Requests are unauthenticated.
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a GitHub client for the configured API endpoint
func NewGitHubService(cfg config.GitHubConfig) (*GitHubService, error) {
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout(),
	}
	client := github.NewClient(httpClient)

	if cfg.APIURL != "" {
		apiURL := cfg.APIURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", cfg.APIURL, err)
		}
		client.BaseURL = baseURL
	}
	if cfg.UserAgent != "" {
		client.UserAgent = cfg.UserAgent
	}

	return &GitHubService{client: client}, nil
}

// NewGitHubServiceWithClient wraps an already configured GitHub client
func NewGitHubServiceWithClient(client *github.Client) *GitHubService {
	return &GitHubService{client: client}
}

// GetProfile fetches GET /users/{username}
func (s *GitHubService) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	// go-github turns an empty user into GET /user, which needs a token
	if username == "" {
		return nil, &NotFoundError{Resource: ResourceProfile, StatusCode: http.StatusNotFound}
	}

	var user github.User
	if err := s.get(ctx, ResourceProfile, fmt.Sprintf("users/%s", url.PathEscape(username)), &user); err != nil {
		return nil, err
	}

	return models.NewProfileFromAPI(&user), nil
}

// ListRepositories fetches GET /users/{username}/repos.
// Only the first page GitHub returns is read.
func (s *GitHubService) ListRepositories(ctx context.Context, username string) ([]*models.RepositorySummary, error) {
	if username == "" {
		return nil, &NotFoundError{Resource: ResourceRepositories, StatusCode: http.StatusNotFound}
	}

	var repos []*github.Repository
	if err := s.get(ctx, ResourceRepositories, fmt.Sprintf("users/%s/repos", url.PathEscape(username)), &repos); err != nil {
		return nil, err
	}

	summaries := make([]*models.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		summaries = append(summaries, models.NewRepositorySummaryFromAPI(repo))
	}

	return summaries, nil
}

// get requests path and decodes the body into v. Every 2xx answer is
// decoded, and a missing body fails like any other malformed one.
func (s *GitHubService) get(ctx context.Context, resource, path string, v interface{}) error {
	req, err := s.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return classifyError(resource, err)
	}

	var raw json.RawMessage
	_, err = s.client.Do(ctx, req, &raw)

	// go-github reports 202 as an error and keeps the body aside
	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		raw, err = accepted.Raw, nil
	}
	if err != nil {
		return classifyError(resource, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return classifyError(resource, err)
	}
	return nil
}
