// Package browser is the interactive enum browser: an enum list pane on the
// left and a value detail pane on the right.
package browser

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/nacre/internal/i18n"
	"github.com/zjrosen/nacre/internal/log"
	"github.com/zjrosen/nacre/internal/presentation"
	"github.com/zjrosen/nacre/internal/registry"
	"github.com/zjrosen/nacre/internal/ui/styles"
)

type focusArea int

const (
	focusList focusArea = iota
	focusValues
)

const listPaneWidth = 28

// enumsLoadedMsg carries freshly loaded enums into the model.
type enumsLoadedMsg struct {
	enums []presentation.EnumDTO
}

// loadFailedMsg carries a population failure.
type loadFailedMsg struct {
	err error
}

// Model holds the browse view state.
type Model struct {
	registry  *registry.Registry
	localizer *i18n.Localizer
	keys      KeyMap

	enums      []presentation.EnumDTO
	selected   int
	focus      focusArea
	viewport   viewport.Model
	showCounts bool

	width  int
	height int
	ready  bool
	err    error
}

// Option configures the browser.
type Option func(*Model)

// WithCounts shows value counts next to enum names in the list pane.
func WithCounts() Option {
	return func(m *Model) { m.showCounts = true }
}

// New creates a browser over a registry. loc may be nil to skip labels.
func New(reg *registry.Registry, loc *i18n.Localizer, opts ...Option) Model {
	m := Model{
		registry:  reg,
		localizer: loc,
		keys:      DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init triggers the initial registry load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.registry.Populate(ctx); err != nil {
			return loadFailedMsg{err: err}
		}
		return enumsLoadedMsg{enums: presentation.FromEnums(m.registry.Enums(), m.localizer)}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(m.valuesWidth(), m.paneHeight())
		m.ready = true
		m.refreshViewport()
		return m, nil

	case enumsLoadedMsg:
		m.enums = msg.enums
		m.err = nil
		if m.selected >= len(m.enums) {
			m.selected = 0
		}
		m.refreshViewport()
		return m, nil

	case loadFailedMsg:
		log.ErrorErr(log.CatUI, "Browse load failed", msg.err)
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			if m.focus == focusList {
				m.focus = focusValues
			} else {
				m.focus = focusList
			}
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			// Reset first so enums removed from a source do not linger.
			m.registry.Reset()
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Up):
			if m.focus == focusList {
				if m.selected > 0 {
					m.selected--
					m.refreshViewport()
				}
				return m, nil
			}
		case key.Matches(msg, m.keys.Down):
			if m.focus == focusList {
				if m.selected < len(m.enums)-1 {
					m.selected++
					m.refreshViewport()
				}
				return m, nil
			}
		}
	}

	if m.focus == focusValues && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Selected returns the currently selected enum, if any.
func (m Model) Selected() (presentation.EnumDTO, bool) {
	if m.selected >= 0 && m.selected < len(m.enums) {
		return m.enums[m.selected], true
	}
	return presentation.EnumDTO{}, false
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	dto, ok := m.Selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	renderer := presentation.NewTableRenderer(presentation.WithWidth(m.valuesWidth() - 2))
	m.viewport.SetContent(renderer.RenderEnum(dto))
}

func (m Model) valuesWidth() int {
	w := m.width - listPaneWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) paneHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the two panes plus a help line.
func (m Model) View() string {
	if m.err != nil {
		return styles.ErrorStyle.Render("Failed to load sources: "+m.err.Error()) + "\n" +
			styles.HelpStyle.Render("r reload · q quit") + "\n"
	}
	if !m.ready {
		return "Loading..."
	}

	list := m.renderList()
	values := m.viewport.View()

	listStyle := styles.BlurredPaneStyle
	valuesStyle := styles.BlurredPaneStyle
	if m.focus == focusList {
		listStyle = styles.FocusedPaneStyle
	} else {
		valuesStyle = styles.FocusedPaneStyle
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Width(listPaneWidth).Height(m.paneHeight()).Render(list),
		valuesStyle.Width(m.valuesWidth()).Height(m.paneHeight()).Render(values),
	)

	help := styles.HelpStyle.Render("j/k move · tab switch pane · r reload · q quit")
	return panes + "\n" + help + "\n"
}

func (m Model) renderList() string {
	if len(m.enums) == 0 {
		return styles.HelpStyle.Render("No enums defined")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Enums") + "\n")
	for i, dto := range m.enums {
		label := dto.Name
		if m.showCounts {
			label += " (" + strconv.Itoa(len(dto.Values)) + ")"
		}
		if i == m.selected {
			b.WriteString(styles.SelectionIndicatorStyle.Render("> ") +
				lipgloss.NewStyle().Bold(true).Render(label))
		} else {
			b.WriteString("  " + label)
		}
		if i < len(m.enums)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
