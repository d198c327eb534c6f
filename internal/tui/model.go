// Package tui is the terminal rendition of the profile viewer widget
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimgiray/ghprofile/internal/services"
	"github.com/alimgiray/ghprofile/internal/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type searchDoneMsg struct {
	err error
}

// Model drives a Viewer from the keyboard. Everything it draws comes from
// the viewer's snapshot, so a search finishing in the background shows up
// on the next frame.
type Model struct {
	ctx     context.Context
	viewer  *services.Viewer
	input   textinput.Model
	spinner spinner.Model
	initial bool
}

// New creates the terminal widget. When searchOnStart is set, the viewer's
// current input is searched as soon as the program starts.
func New(ctx context.Context, viewer *services.Viewer, searchOnStart bool) Model {
	input := textinput.New()
	input.Placeholder = views.InputPlaceholder
	input.Prompt = "> "
	input.SetValue(viewer.Input())
	input.Focus()

	return Model{
		ctx:     ctx,
		viewer:  viewer,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		initial: searchOnStart,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.initial {
		cmds = append(cmds, m.submit())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	case searchDoneMsg:
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != previous {
		m.viewer.SetInput(value)
	}
	return m, cmd
}

// submit searches the current input in the background
func (m Model) submit() tea.Cmd {
	viewer, ctx := m.viewer, m.ctx
	return func() tea.Msg {
		return searchDoneMsg{err: viewer.Submit(ctx)}
	}
}

func (m Model) View() string {
	page := views.Build(m.viewer.Snapshot())

	var ss []string
	ss = append(ss, titleStyle.Render(page.Title), faintStyle.Render(page.Hint), "")

	button := "[" + page.Form.SubmitLabel + "]"
	if page.Form.Busy {
		button = m.spinner.View() + button
	}
	ss = append(ss, m.input.View()+"  "+button)

	if page.Error != "" {
		ss = append(ss, errorStyle.Render(page.Error))
	}

	if page.Profile != nil {
		ss = append(ss, "", renderProfile(page.Profile))
		ss = append(ss, headingStyle.Render(views.RepositoriesTitle))
		for _, card := range page.Repositories {
			ss = append(ss, renderCard(card))
		}
	}

	ss = append(ss, "", faintStyle.Render("enter: search • esc: quit"))

	return lipgloss.NewStyle().MarginTop(1).MarginBottom(1).MarginLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, ss...),
	) + "\n"
}

func renderProfile(profile *views.ProfileView) string {
	lines := []string{
		nameStyle.Render(profile.DisplayName) + " " + linkStyle.Render(profile.HTMLURL),
	}
	if profile.Bio != "" {
		lines = append(lines, profile.Bio)
	}
	lines = append(lines, fmt.Sprintf("%s followers · %s following · %s",
		profile.FollowersText, profile.FollowingText, profile.Location))
	return strings.Join(lines, "\n")
}

func renderCard(card views.RepositoryCard) string {
	return cardStyle.Render(strings.Join([]string{
		nameStyle.Render(card.Name),
		card.Description,
		fmt.Sprintf("★ %s · %s forks", card.StarsText, card.ForksText),
		card.LinkLabel + ": " + linkStyle.Render(card.HTMLURL),
	}, "\n"))
}
