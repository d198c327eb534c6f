package models

import "github.com/google/go-github/v57/github"

// RepositorySummary represents one entry of a user's public repository list
type RepositorySummary struct {
	ID              int64   `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Description     *string `json:"description" yaml:"description"`
	HTMLURL         string  `json:"html_url" yaml:"html_url"`
	StargazersCount int     `json:"stargazers_count" yaml:"stargazers_count"`
	ForksCount      int     `json:"forks_count" yaml:"forks_count"`
}

// NewRepositorySummaryFromAPI creates a RepositorySummary from GitHub API repository data
func NewRepositorySummaryFromAPI(repo *github.Repository) *RepositorySummary {
	summary := &RepositorySummary{
		ID:              repo.GetID(),
		Name:            repo.GetName(),
		HTMLURL:         repo.GetHTMLURL(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
	}

	if repo.Description != nil && *repo.Description != "" {
		description := *repo.Description
		summary.Description = &description
	}

	return summary
}
