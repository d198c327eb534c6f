package models

import "time"

// SearchResult is the profile and repository list of one successful search.
// Both halves always belong to the same username.
type SearchResult struct {
	Username     string               `json:"username" yaml:"username"`
	Profile      *Profile             `json:"profile" yaml:"profile"`
	Repositories []*RepositorySummary `json:"repositories" yaml:"repositories"`
	FetchedAt    time.Time            `json:"fetched_at" yaml:"fetched_at"`
}

// NewSearchResult pairs a profile with its repositories
func NewSearchResult(username string, profile *Profile, repos []*RepositorySummary) *SearchResult {
	if repos == nil {
		repos = []*RepositorySummary{}
	}
	return &SearchResult{
		Username:     username,
		Profile:      profile,
		Repositories: repos,
		FetchedAt:    time.Now(),
	}
}
