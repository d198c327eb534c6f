package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/google/go-github/v57/github"
)

// NotFoundMessage is shown for every non-success answer of the GitHub API
const NotFoundMessage = "Not found"

// FallbackMessage is shown when a failure carries no description of its own
const FallbackMessage = "Something went wrong"

// Resources looked up during a search
const (
	ResourceProfile      = "profile"
	ResourceRepositories = "repositories"
)

// SearchFailure is a failure recorded by a viewer search.
// UserMessage is the text placed into the widget's error state.
type SearchFailure interface {
	error
	UserMessage() string
}

// NotFoundError is returned when GitHub answers a lookup with a non-success status.
// Missing users, missing repositories and rate limiting all end up here.
type NotFoundError struct {
	Resource    string
	StatusCode  int
	RateLimited bool
}

func (e *NotFoundError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("%s lookup rate limited (status %d)", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("%s lookup failed with status %d", e.Resource, e.StatusCode)
}

func (e *NotFoundError) UserMessage() string {
	return NotFoundMessage
}

// NetworkError is returned when a request never produced a response
type NetworkError struct {
	Resource string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Resource, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) UserMessage() string {
	cause := e.Err
	var urlErr *url.Error
	if errors.As(cause, &urlErr) && urlErr.Err != nil {
		cause = urlErr.Err
	}
	return messageOf(cause)
}

// ParseError is returned when a response body is not the expected JSON shape
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) UserMessage() string {
	return messageOf(e.Err)
}

// UnexpectedError wraps anything that fits none of the other failure kinds
type UnexpectedError struct {
	Resource string
	Err      error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s lookup: %v", e.Resource, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

func (e *UnexpectedError) UserMessage() string {
	return messageOf(e.Err)
}

// ErrorMessage returns the user facing text for any error
func ErrorMessage(err error) string {
	var failure SearchFailure
	if errors.As(err, &failure) {
		if msg := failure.UserMessage(); msg != "" {
			return msg
		}
		return FallbackMessage
	}
	return messageOf(err)
}

func messageOf(err error) string {
	if err == nil || err.Error() == "" {
		return FallbackMessage
	}
	return err.Error()
}

// classifyError maps an error returned by the GitHub client onto a SearchFailure
func classifyError(resource string, err error) SearchFailure {
	var failure SearchFailure
	if errors.As(err, &failure) {
		return failure
	}

	var (
		rateErr      *github.RateLimitError
		abuseErr     *github.AbuseRateLimitError
		twoFactorErr *github.TwoFactorAuthError
		responseErr  *github.ErrorResponse
		syntaxErr    *json.SyntaxError
		typeErr      *json.UnmarshalTypeError
		urlErr       *url.Error
		netErr       net.Error
	)

	switch {
	case errors.As(err, &rateErr):
		return &NotFoundError{Resource: resource, StatusCode: statusOf(rateErr.Response), RateLimited: true}
	case errors.As(err, &abuseErr):
		return &NotFoundError{Resource: resource, StatusCode: statusOf(abuseErr.Response), RateLimited: true}
	case errors.As(err, &twoFactorErr):
		return &NotFoundError{Resource: resource, StatusCode: statusOf(twoFactorErr.Response)}
	case errors.As(err, &responseErr):
		return &NotFoundError{Resource: resource, StatusCode: statusOf(responseErr.Response)}
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &ParseError{Resource: resource, Err: err}
	case errors.As(err, &urlErr), errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &NetworkError{Resource: resource, Err: err}
	default:
		return &UnexpectedError{Resource: resource, Err: err}
	}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
