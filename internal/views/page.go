// Package views derives what a profile viewer shows from its state.
// Build is shared by the HTML page, the JSON API and the terminal UI.
package views

import (
	"github.com/alimgiray/ghprofile/internal/models"
	"github.com/dustin/go-humanize"
)

// Kind is the variant of the page being shown
type Kind string

const (
	KindIdle      Kind = "idle"
	KindLoading   Kind = "loading"
	KindError     Kind = "error"
	KindPopulated Kind = "populated"
)

const (
	Title             = "Github Profile Viewer"
	Hint              = "Search for a GitHub username and view their profile and repositories, search like: SaherSaleem"
	InputPlaceholder  = "Enter a github username"
	SearchLabel       = "Search"
	BusyLabel         = "loading.."
	RepositoriesTitle = "Repositories"
	MissingLocation   = "N/A"
	MissingDesc       = "no description"
	RepositoryLink    = "View on Github"
)

type Page struct {
	Kind         Kind             `json:"kind" yaml:"kind"`
	Title        string           `json:"title" yaml:"title"`
	Hint         string           `json:"hint" yaml:"hint"`
	Form         Form             `json:"form" yaml:"form"`
	Error        string           `json:"error,omitempty" yaml:"error,omitempty"`
	Profile      *ProfileView     `json:"profile,omitempty" yaml:"profile,omitempty"`
	Repositories []RepositoryCard `json:"repositories" yaml:"repositories"`
}

type Form struct {
	Value       string `json:"value" yaml:"value"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	SubmitLabel string `json:"submit_label" yaml:"submit_label"`
	Busy        bool   `json:"busy" yaml:"busy"`
}

type ProfileView struct {
	Login          string `json:"login" yaml:"login"`
	DisplayName    string `json:"display_name" yaml:"display_name"`
	Bio            string `json:"bio" yaml:"bio"`
	AvatarURL      string `json:"avatar_url" yaml:"avatar_url"`
	AvatarFallback string `json:"avatar_fallback" yaml:"avatar_fallback"`
	HTMLURL        string `json:"html_url" yaml:"html_url"`
	Followers      int    `json:"followers" yaml:"followers"`
	Following      int    `json:"following" yaml:"following"`
	FollowersText  string `json:"followers_text" yaml:"followers_text"`
	FollowingText  string `json:"following_text" yaml:"following_text"`
	Location       string `json:"location" yaml:"location"`
}

type RepositoryCard struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	HTMLURL     string `json:"html_url" yaml:"html_url"`
	LinkLabel   string `json:"link_label" yaml:"link_label"`
	Stars       int    `json:"stars" yaml:"stars"`
	Forks       int    `json:"forks" yaml:"forks"`
	StarsText   string `json:"stars_text" yaml:"stars_text"`
	ForksText   string `json:"forks_text" yaml:"forks_text"`
}

// Build derives the page for a viewer state.
// A previous result stays on the page while loading or after an error.
func Build(state models.ViewerState) Page {
	page := Page{
		Kind:  kindOf(state),
		Title: Title,
		Hint:  Hint,
		Form: Form{
			Value:       state.Input,
			Placeholder: InputPlaceholder,
			SubmitLabel: SearchLabel,
			Busy:        state.Loading,
		},
		Error:        state.Error,
		Repositories: []RepositoryCard{},
	}
	if state.Loading {
		page.Form.SubmitLabel = BusyLabel
	}

	if state.HasResult() {
		page.Profile = buildProfile(state.Result)
		for _, repo := range state.Result.Repositories {
			page.Repositories = append(page.Repositories, buildCard(repo))
		}
	}

	return page
}

func kindOf(state models.ViewerState) Kind {
	switch {
	case state.Loading:
		return KindLoading
	case state.HasError():
		return KindError
	case state.HasResult():
		return KindPopulated
	default:
		return KindIdle
	}
}

func buildProfile(result *models.SearchResult) *ProfileView {
	profile := result.Profile
	view := &ProfileView{
		Login:          profile.Login,
		DisplayName:    profile.DisplayName(),
		Bio:            profile.Bio,
		AvatarURL:      profile.AvatarURL,
		AvatarFallback: result.Username,
		HTMLURL:        profile.HTMLURL,
		Followers:      profile.Followers,
		Following:      profile.Following,
		FollowersText:  humanize.Comma(int64(profile.Followers)),
		FollowingText:  humanize.Comma(int64(profile.Following)),
		Location:       MissingLocation,
	}
	if profile.Location != nil && *profile.Location != "" {
		view.Location = *profile.Location
	}
	return view
}

func buildCard(repo *models.RepositorySummary) RepositoryCard {
	card := RepositoryCard{
		ID:          repo.ID,
		Name:        repo.Name,
		Description: MissingDesc,
		HTMLURL:     repo.HTMLURL,
		LinkLabel:   RepositoryLink,
		Stars:       repo.StargazersCount,
		Forks:       repo.ForksCount,
		StarsText:   humanize.Comma(int64(repo.StargazersCount)),
		ForksText:   humanize.Comma(int64(repo.ForksCount)),
	}
	if repo.Description != nil && *repo.Description != "" {
		card.Description = *repo.Description
	}
	return card
}
