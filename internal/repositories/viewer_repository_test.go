package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alimgiray/ghprofile/internal/models"
	"github.com/alimgiray/ghprofile/internal/services"
	"github.com/stretchr/testify/assert"
)

type nopFetcher struct{}

func (nopFetcher) GetProfile(context.Context, string) (*models.Profile, error) {
	return &models.Profile{}, nil
}

func (nopFetcher) ListRepositories(context.Context, string) ([]*models.RepositorySummary, error) {
	return nil, nil
}

func newTestRepository() (*ViewerRepository, *time.Time) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewViewerRepository(func() *services.Viewer {
		return services.NewViewer(nopFetcher{})
	})
	repo.now = func() time.Time { return clock }
	return repo, &clock
}

func TestGetOrCreateReturnsSameViewerPerSession(t *testing.T) {
	repo, _ := newTestRepository()

	first := repo.GetOrCreate("a")
	first.SetInput("octocat")
	again := repo.GetOrCreate("a")
	other := repo.GetOrCreate("b")

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
	assert.Equal(t, "octocat", again.Input())
	assert.Equal(t, "", other.Input(), "sessions must not share state")
	assert.Equal(t, 2, repo.Count())
}

func TestGetAndDelete(t *testing.T) {
	repo, _ := newTestRepository()

	_, ok := repo.get("a")
	assert.False(t, ok)

	created := repo.GetOrCreate("a")
	found, ok := repo.get("a")
	assert.True(t, ok)
	assert.Same(t, created, found)

	repo.Delete("a")
	_, ok = repo.get("a")
	assert.False(t, ok)
}

func TestDeleteIdle(t *testing.T) {
	repo, clock := newTestRepository()

	repo.GetOrCreate("old")
	*clock = clock.Add(30 * time.Minute)
	repo.GetOrCreate("recent")
	*clock = clock.Add(20 * time.Minute)

	removed := repo.DeleteIdle(45 * time.Minute)

	assert.Equal(t, 1, removed)
	_, ok := repo.get("old")
	assert.False(t, ok)
	_, ok = repo.get("recent")
	assert.True(t, ok)
}

func TestGetOrCreateRefreshesLastSeen(t *testing.T) {
	repo, clock := newTestRepository()

	repo.GetOrCreate("a")
	*clock = clock.Add(40 * time.Minute)
	repo.GetOrCreate("a")
	*clock = clock.Add(40 * time.Minute)

	assert.Zero(t, repo.DeleteIdle(time.Hour))
	assert.Equal(t, 1, repo.Count())
}
