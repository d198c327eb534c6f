package models

import "github.com/google/go-github/v57/github"

// Profile represents the public profile of a GitHub user
type Profile struct {
	Login     string  `json:"login" yaml:"login"`
	Name      string  `json:"name" yaml:"name"`
	Bio       string  `json:"bio" yaml:"bio"`
	AvatarURL string  `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL   string  `json:"html_url" yaml:"html_url"`
	Followers int     `json:"followers" yaml:"followers"`
	Following int     `json:"following" yaml:"following"`
	Location  *string `json:"location" yaml:"location"`
}

// NewProfileFromAPI creates a Profile from GitHub API user data
func NewProfileFromAPI(user *github.User) *Profile {
	profile := &Profile{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Bio:       user.GetBio(),
		AvatarURL: user.GetAvatarURL(),
		HTMLURL:   user.GetHTMLURL(),
		Followers: user.GetFollowers(),
		Following: user.GetFollowing(),
	}

	// An empty location is rendered the same as a missing one
	if user.Location != nil && *user.Location != "" {
		location := *user.Location
		profile.Location = &location
	}

	return profile
}

// DisplayName returns the name shown above the bio, falling back to the login
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
