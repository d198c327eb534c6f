package views

import (
	"testing"

	"github.com/alimgiray/ghprofile/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedResult() *models.SearchResult {
	location := "Lahore"
	description := "Portfolio site"
	return models.NewSearchResult("SaherSaleem", &models.Profile{
		Login:     "SaherSaleem",
		Name:      "Saher Saleem",
		Bio:       "Frontend developer",
		AvatarURL: "https://avatars.example/saher.png",
		HTMLURL:   "https://github.com/SaherSaleem",
		Followers: 1234,
		Following: 56,
		Location:  &location,
	}, []*models.RepositorySummary{
		{ID: 1, Name: "portfolio", Description: &description, HTMLURL: "https://github.com/SaherSaleem/portfolio", StargazersCount: 4200, ForksCount: 3},
		{ID: 2, Name: "dotfiles", HTMLURL: "https://github.com/SaherSaleem/dotfiles"},
	})
}

func TestBuildKinds(t *testing.T) {
	result := populatedResult()

	testCases := []struct {
		name     string
		state    models.ViewerState
		expected Kind
	}{
		{name: "idle", state: models.ViewerState{}, expected: KindIdle},
		{name: "loading", state: models.ViewerState{Loading: true}, expected: KindLoading},
		{name: "loading over stale result", state: models.ViewerState{Loading: true, Result: result}, expected: KindLoading},
		{name: "error", state: models.ViewerState{Error: "Not found"}, expected: KindError},
		{name: "error over stale result", state: models.ViewerState{Error: "Not found", Result: result}, expected: KindError},
		{name: "populated", state: models.ViewerState{Result: result}, expected: KindPopulated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Build(tc.state).Kind)
		})
	}
}

func TestBuildIdle(t *testing.T) {
	page := Build(models.ViewerState{Input: "octo"})

	assert.Equal(t, Title, page.Title)
	assert.Equal(t, "octo", page.Form.Value)
	assert.Equal(t, "Enter a github username", page.Form.Placeholder)
	assert.Equal(t, "Search", page.Form.SubmitLabel)
	assert.False(t, page.Form.Busy)
	assert.Nil(t, page.Profile)
	assert.Empty(t, page.Repositories)
	assert.Empty(t, page.Error)
}

func TestBuildLoadingLabel(t *testing.T) {
	page := Build(models.ViewerState{Loading: true})

	assert.Equal(t, "loading..", page.Form.SubmitLabel)
	assert.True(t, page.Form.Busy)
}

func TestBuildPopulated(t *testing.T) {
	page := Build(models.ViewerState{Result: populatedResult()})

	require.NotNil(t, page.Profile)
	assert.Equal(t, "Saher Saleem", page.Profile.DisplayName)
	assert.Equal(t, "SaherSaleem", page.Profile.AvatarFallback)
	assert.Equal(t, 1234, page.Profile.Followers)
	assert.Equal(t, "1,234", page.Profile.FollowersText)
	assert.Equal(t, 56, page.Profile.Following)
	assert.Equal(t, "Lahore", page.Profile.Location)

	require.Len(t, page.Repositories, 2)
	assert.Equal(t, "Portfolio site", page.Repositories[0].Description)
	assert.Equal(t, "4,200", page.Repositories[0].StarsText)
	assert.Equal(t, "View on Github", page.Repositories[0].LinkLabel)
	assert.Equal(t, "no description", page.Repositories[1].Description)
}

func TestBuildPlaceholders(t *testing.T) {
	empty := ""
	result := models.NewSearchResult("ghost", &models.Profile{Login: "ghost", Location: &empty}, nil)

	page := Build(models.ViewerState{Result: result})

	require.NotNil(t, page.Profile)
	assert.Equal(t, "N/A", page.Profile.Location)
	assert.Equal(t, "ghost", page.Profile.DisplayName)
	assert.Empty(t, page.Repositories)
}

func TestBuildErrorKeepsStaleResult(t *testing.T) {
	page := Build(models.ViewerState{Error: "Not found", Result: populatedResult()})

	assert.Equal(t, "Not found", page.Error)
	require.NotNil(t, page.Profile)
	assert.Len(t, page.Repositories, 2)
}

func TestBuildRepositoryCountMatchesResult(t *testing.T) {
	result := populatedResult()

	page := Build(models.ViewerState{Result: result})

	assert.Equal(t, len(result.Repositories), len(page.Repositories))
}
