package main

import (
	"context"

	"emperror.dev/errors"
	"github.com/alimgiray/ghprofile/internal/services"
	"github.com/alimgiray/ghprofile/pkg/config"
)

// newViewer mounts a viewer backed by the configured GitHub API
func newViewer() (*services.Viewer, error) {
	github, err := services.NewGitHubService(config.Get().GitHub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GitHub client")
	}
	return services.NewViewer(github), nil
}

// search types username into a fresh viewer and submits it
func search(ctx context.Context, username string) (*services.Viewer, error) {
	viewer, err := newViewer()
	if err != nil {
		return nil, err
	}
	viewer.SetInput(username)
	_ = viewer.Submit(ctx)
	return viewer, nil
}
