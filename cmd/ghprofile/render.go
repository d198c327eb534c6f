package main

import (
	"fmt"
	"io"

	"github.com/alimgiray/ghprofile/internal/views"
	"github.com/fatih/color"
)

var (
	boldString  = color.New(color.Bold).SprintFunc()
	faintString = color.New(color.Faint).SprintFunc()
)

// printPage writes the text rendition of a page
func printPage(w io.Writer, page views.Page) {
	_, _ = fmt.Fprintln(w, boldString(page.Title))

	if page.Error != "" {
		_, _ = fmt.Fprintln(w, color.RedString(page.Error))
	}

	profile := page.Profile
	if profile == nil {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, boldString(color.GreenString(profile.DisplayName)), " ", color.CyanString(profile.HTMLURL), "\n")
	if profile.Bio != "" {
		_, _ = fmt.Fprintln(w, profile.Bio)
	}
	_, _ = fmt.Fprintf(w, "%s followers · %s following · %s\n",
		profile.FollowersText, profile.FollowingText, profile.Location)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, boldString(views.RepositoriesTitle))
	for _, card := range page.Repositories {
		_, _ = fmt.Fprintf(w, "  %s  ★ %s  forks %s\n", boldString(card.Name), card.StarsText, card.ForksText)
		_, _ = fmt.Fprintf(w, "    %s\n", faintString(card.Description))
		_, _ = fmt.Fprintf(w, "    %s: %s\n", card.LinkLabel, color.CyanString(card.HTMLURL))
	}
}
