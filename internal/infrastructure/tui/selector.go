package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalatools/sbtup/internal/domain/entities"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	rankStyles = map[entities.Rank]lipgloss.Style{
		entities.RankMajor:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		entities.RankMinor:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		entities.RankPatch:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		entities.RankUnknown: dimStyle,
	}
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.All}, {k.Confirm, k.Quit}}
}

// SelectorModel drives the interactive candidate picker. All selection state
// lives in the underlying session; the model only renders it and routes keys.
type SelectorModel struct {
	session   *entities.SelectionSession
	keys      keyMap
	help      help.Model
	confirmed bool
	quitting  bool
}

func NewSelectorModel(session *entities.SelectionSession) SelectorModel {
	return SelectorModel{
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Confirmed reports whether the user submitted the selection rather than
// cancelling.
func (m SelectorModel) Confirmed() bool { return m.confirmed }

func (m SelectorModel) Init() tea.Cmd { return nil }

func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.session.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.session.MoveDown()
		case key.Matches(msg, m.keys.Toggle):
			m.session.Toggle()
		case key.Matches(msg, m.keys.All):
			m.session.ToggleAll()
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SelectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Available updates"))
	b.WriteString("\n\n")

	for i, candidate := range m.session.Candidates() {
		cursor := "  "
		if i == m.session.Cursor() {
			cursor = cursorStyle.Render("❯ ")
		}

		checkbox := "[ ]"
		if m.session.IsSelected(i) {
			checkbox = selectedStyle.Render("[x]")
		}

		rank := rankStyles[candidate.Rank].Render(string(candidate.Rank))
		b.WriteString(fmt.Sprintf("%s%s %s  %s %s %s  %s\n",
			cursor, checkbox,
			candidate.Coordinate.Key(),
			candidate.Current.Raw,
			dimStyle.Render("→"),
			candidate.Proposed.Raw,
			rank,
		))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// TUICandidateSelector runs the picker as an interactive terminal program.
type TUICandidateSelector struct{}

func NewTUICandidateSelector() *TUICandidateSelector {
	return &TUICandidateSelector{}
}

func (it *TUICandidateSelector) Select(
	ctx context.Context, session *entities.SelectionSession,
) (bool, error) {
	program := tea.NewProgram(NewSelectorModel(session), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("selection UI failed: %w", err)
	}

	model, ok := final.(SelectorModel)
	if !ok {
		return false, fmt.Errorf("selection UI returned unexpected model %T", final)
	}
	return model.Confirmed(), nil
}
