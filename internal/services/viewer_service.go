package services

import (
	"context"
	"sync"

	"github.com/alimgiray/ghprofile/internal/models"
	"github.com/alimgiray/ghprofile/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ProfileFetcher is the source a Viewer searches against
type ProfileFetcher interface {
	GetProfile(ctx context.Context, username string) (*models.Profile, error)
	ListRepositories(ctx context.Context, username string) ([]*models.RepositorySummary, error)
}

// Viewer is one profile viewer widget: the username input, the loading and
// error flags and the last successful search result.
//
// Searches may overlap. Every search takes a new generation and only the
// latest generation writes its outcome, so the last submitted search wins.
type Viewer struct {
	fetcher ProfileFetcher

	mu         sync.Mutex
	input      string
	loading    bool
	errMsg     string
	result     *models.SearchResult
	generation uint64
}

// NewViewer creates an idle viewer
func NewViewer(fetcher ProfileFetcher) *Viewer {
	return &Viewer{fetcher: fetcher}
}

// SetInput stores the username text exactly as typed
func (v *Viewer) SetInput(value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.input = value
}

// Input returns the current username text
func (v *Viewer) Input() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.input
}

// Snapshot returns a copy of the current state
func (v *Viewer) Snapshot() models.ViewerState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return models.ViewerState{
		Input:   v.input,
		Loading: v.loading,
		Error:   v.errMsg,
		Result:  v.result,
	}
}

// Submit searches for the current input value
func (v *Viewer) Submit(ctx context.Context) error {
	return v.Search(ctx, v.Input())
}

// Search looks up the profile of username and then its repositories.
// The repository request is only sent once the profile request succeeded.
// The stored result changes only when both succeed; on failure the error
// state is set and the previous result stays in place. The returned error
// is the SearchFailure recorded for this call, if any.
func (v *Viewer) Search(ctx context.Context, username string) error {
	generation := v.begin()
	log := logger.WithFields(logrus.Fields{
		"username":   username,
		"generation": generation,
	})
	log.Debug("search started")

	var result *models.SearchResult
	var failure SearchFailure
	defer func() {
		v.finish(generation, result, failure, log)
	}()

	profile, fetchErr := v.fetcher.GetProfile(ctx, username)
	if fetchErr != nil {
		failure = classifyError(ResourceProfile, fetchErr)
		return failure
	}

	repos, fetchErr := v.fetcher.ListRepositories(ctx, username)
	if fetchErr != nil {
		failure = classifyError(ResourceRepositories, fetchErr)
		return failure
	}

	result = models.NewSearchResult(username, profile, repos)
	return nil
}

// begin clears the error, raises the loading flag and hands out a generation
func (v *Viewer) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.errMsg = ""
	v.loading = true
	return v.generation
}

// finish records the outcome of a search unless a newer one has started since
func (v *Viewer) finish(generation uint64, result *models.SearchResult, failure SearchFailure, log *logrus.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if generation != v.generation {
		log.WithField("latest_generation", v.generation).Debug("discarding stale search outcome")
		return
	}

	v.loading = false
	switch {
	case failure != nil:
		v.errMsg = ErrorMessage(failure)
		log.WithField("failure", failure.Error()).Info("search failed")
	case result != nil:
		v.result = result
		log.WithField("repositories", len(result.Repositories)).Info("search finished")
	}
}
