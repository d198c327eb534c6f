package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alimgiray/ghprofile/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func fakeGitHub(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login": "octocat", "name": "The Octocat", "bio": "Mascot", "followers": 4000, "following": 9, "location": null, "html_url": "https://github.com/octocat"}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 1, "name": "hello-world", "description": null, "html_url": "https://github.com/octocat/hello-world", "stargazers_count": 1500, "forks_count": 3}]`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("GITHUB_API_URL", server.URL)
}

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})
	err := RootCmd.Execute()
	return out.String(), err
}

func TestLookupText(t *testing.T) {
	fakeGitHub(t)

	out, err := execute(t, "lookup", "octocat", "--output", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "Github Profile Viewer")
	assert.Contains(t, out, "The Octocat")
	assert.Contains(t, out, "4,000 followers · 9 following · N/A")
	assert.Contains(t, out, "hello-world")
	assert.Contains(t, out, "no description")
	assert.Contains(t, out, "View on Github: https://github.com/octocat/hello-world")
}

func TestLookupJSON(t *testing.T) {
	fakeGitHub(t)

	out, err := execute(t, "lookup", "octocat", "--output", "json")

	require.NoError(t, err)
	var page views.Page
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, views.KindPopulated, page.Kind)
	require.NotNil(t, page.Profile)
	assert.Equal(t, 4000, page.Profile.Followers)
	require.Len(t, page.Repositories, 1)
	assert.Equal(t, "1,500", page.Repositories[0].StarsText)
}

func TestLookupYAML(t *testing.T) {
	fakeGitHub(t)

	out, err := execute(t, "lookup", "octocat", "--output", "yaml")

	require.NoError(t, err)
	var page views.Page
	require.NoError(t, yaml.Unmarshal([]byte(out), &page))
	assert.Equal(t, views.KindPopulated, page.Kind)
	assert.Equal(t, "The Octocat", page.Profile.DisplayName)
	assert.Contains(t, out, "display_name: The Octocat")
}

func TestLookupNotFoundExitsWithStatusOne(t *testing.T) {
	fakeGitHub(t)

	out, err := execute(t, "lookup", "nobody-here", "--output", "text")

	assert.Equal(t, exitError{code: 1}, err)
	assert.Contains(t, out, "Not found")
}

func TestLookupRejectsUnknownFormat(t *testing.T) {
	fakeGitHub(t)

	_, err := execute(t, "lookup", "octocat", "--output", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestExportWritesWorkbook(t *testing.T) {
	fakeGitHub(t)
	path := filepath.Join(t.TempDir(), "octocat.xlsx")

	out, err := execute(t, "export", "octocat", "--file", path)

	require.NoError(t, err)
	assert.Contains(t, out, path)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue("Repositories", "B2")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", name)
}

func TestExportFailsForMissingUser(t *testing.T) {
	fakeGitHub(t)

	_, err := execute(t, "export", "nobody-here", "--file", filepath.Join(t.TempDir(), "x.xlsx"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not found")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "<dev>\n", out)
}
