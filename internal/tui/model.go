package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/render"
	"github.com/vmunix/reelfind/internal/search"
)

// Controller is the part of session.Session the model drives.
type Controller interface {
	Show(ctx context.Context, fillForm bool)
	Submit(ctx context.Context, term, year string) error
	Back(ctx context.Context) (bool, error)
	Forward(ctx context.Context) (bool, error)
	LoadMore(ctx context.Context)
}

const (
	fieldTerm = iota
	fieldYear
)

// Model is the Bubble Tea model for the search screen.
type Model struct {
	ctx         context.Context
	ctrl        Controller
	active      func() (query.Key, bool)
	placeholder string
	term        string // initial search, submitted on start
	year        string

	keys   keyMap
	styles styles

	inputs   [2]textinput.Model
	focus    int
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	// Results for key, accumulated over pages.
	shown   bool
	key     query.Key
	movies  []search.Movie
	total   int
	page    int
	hasMore bool
	errText string
	moreErr string
	best    render.Match

	status string
}

func newModel(ctx context.Context, ctrl Controller, active func() (query.Key, bool), opts Options) Model {
	term := textinput.New()
	term.Prompt = ""
	term.Placeholder = "Movie title"
	term.CharLimit = 100
	term.Width = 40
	term.Focus()

	year := textinput.New()
	year.Prompt = ""
	year.Placeholder = "Year"
	year.CharLimit = 4
	year.Width = 6

	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = render.DefaultPlaceholder
	}

	return Model{
		ctx:         ctx,
		ctrl:        ctrl,
		active:      active,
		placeholder: placeholder,
		term:        opts.Term,
		year:        opts.Year,
		keys:        defaultKeyMap(),
		styles:      defaultStyles(),
		inputs:      [2]textinput.Model{term, year},
		viewport:    viewport.New(80, 20),
	}
}

// Init submits the search given on the command line, or restores the
// current location with its form values.
func (m Model) Init() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	start := func() tea.Msg {
		ctrl.Show(ctx, true)
		return nil
	}
	if strings.TrimSpace(m.term) != "" {
		term, year := m.term, m.year
		start = func() tea.Msg {
			if err := ctrl.Submit(ctx, term, year); err != nil {
				return errMsg{err}
			}
			return formMsg(query.Key{Term: term, Year: year})
		}
	}
	return tea.Batch(textinput.Blink, start)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case resultMsg:
		m.handleResult(search.Result(msg))
		return m, nil

	case moreMsg:
		m.handleMore(search.Result(msg))
		return m, nil

	case formMsg:
		m.inputs[fieldTerm].SetValue(msg.Term)
		m.inputs[fieldYear].SetValue(msg.Year)
		return m, nil

	case errMsg:
		m.status = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.status = ""
		if err := m.ctrl.Submit(m.ctx, m.inputs[fieldTerm].Value(), m.inputs[fieldYear].Value()); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.More):
		if m.hasMore {
			m.ctrl.LoadMore(m.ctx)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.navigate(m.ctrl.Back, "no earlier search")
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		m.navigate(m.ctrl.Forward, "no later search")
		return m, nil

	case key.Matches(msg, m.keys.Field):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) navigate(step func(context.Context) (bool, error), edge string) {
	m.status = ""
	moved, err := step(m.ctx)
	switch {
	case err != nil:
		m.status = err.Error()
	case !moved:
		m.status = edge
	}
}

// current reports whether key is the query on screen. Results can be
// queued behind a navigation, so this is checked again here.
func (m Model) current(key query.Key) bool {
	if m.active == nil {
		return true
	}
	active, ok := m.active()
	return ok && active == key
}

func (m *Model) handleResult(res search.Result) {
	if !m.current(res.Key) {
		return
	}
	if m.shown && res.Key == m.key && res.Page == m.page && res.Set.ErrorText == m.errText {
		return
	}

	m.shown = true
	m.key = res.Key
	m.page = res.Page
	m.moreErr = ""
	m.movies = nil
	m.total = 0
	m.hasMore = false
	m.errText = ""
	m.best = render.Match{Index: -1}

	if !res.Set.Successful {
		m.errText = res.Set.ErrorText
	} else {
		m.movies = append(m.movies, res.Set.Items...)
		m.total = res.Set.TotalResults
		m.hasMore = res.HasMore
		m.best = render.BestMatch(res.Key.Term, m.movies)
	}
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) handleMore(res search.Result) {
	if !m.current(res.Key) || !m.shown || res.Key != m.key || res.Page <= m.page {
		return
	}

	if !res.Set.Successful {
		m.moreErr = res.Set.ErrorText
		m.refresh()
		return
	}

	m.moreErr = ""
	m.page = res.Page
	m.movies = append(m.movies, res.Set.Items...)
	m.hasMore = res.HasMore
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.resultsView())
}

func (m Model) resultsView() string {
	if !m.shown {
		return m.styles.Muted.Render("Type a title and press enter.")
	}
	if m.errText != "" {
		return m.styles.Error.Render(m.errText)
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(render.Header(m.total)))
	b.WriteString("\n\n")
	for i, mv := range m.movies {
		title := fmt.Sprintf("%3d. %s (%s)", i+1, mv.Title, mv.Year)
		if m.best.Highlighted() && m.best.Index == i {
			b.WriteString(m.styles.Best.Render(title))
		} else {
			b.WriteString(m.styles.Movie.Render(title))
		}
		b.WriteString(" " + m.styles.Muted.Render(mv.Type) + "\n")
		b.WriteString("     " + m.styles.Link.Render(render.IMDbURL(mv.ID)) + "\n")
		b.WriteString("     " + m.styles.Muted.Render("Poster: "+render.Poster(mv, m.placeholder)) + "\n")
	}
	if m.moreErr != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.moreErr) + "\n")
	}
	if m.hasMore {
		b.WriteString("\n" + m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d. Press ctrl+n to load more.", len(m.movies), m.total)))
	}
	return b.String()
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("reelfind"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Title ") + m.inputs[fieldTerm].View())
	b.WriteString("  ")
	b.WriteString(m.styles.Label.Render("Year ") + m.inputs[fieldYear].View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
	}
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.resultsView())
	}
	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.shortHelp()))
	for _, k := range m.keys.shortHelp() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
