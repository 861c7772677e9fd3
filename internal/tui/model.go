package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/luxtap/luxtap/internal/als"
)

// Reading is one sensor row on the watch screen.
type Reading struct {
	Name    string // registry service name
	Display string // nickname when configured, Name otherwise
	Lux     float64
	Err     error // non-nil when the lux read failed
}

// Messages for async operations
type readingsMsg struct {
	readings []Reading
	err      error // enumeration-level failure
	at       time.Time
}

type tickMsg time.Time

// watchKeyMap defines key bindings for the watch screen
type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Quit},
	}
}

// Model is the watch screen model.
type Model struct {
	hub      *als.Hub
	display  func(string) string
	interval time.Duration

	readings []Reading
	err      error
	loaded   bool
	updated  time.Time

	spinner  spinner.Model
	help     help.Model
	keys     watchKeyMap
	width    int
	quitting bool
}

// NewModel creates a watch model over the given hub. display maps registry
// service names to display names (config nicknames); nil means identity.
func NewModel(hub *als.Hub, display func(string) string, interval time.Duration) Model {
	if display == nil {
		display = func(name string) string { return name }
	}
	if interval <= 0 {
		interval = time.Second
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		hub:      hub,
		display:  display,
		interval: interval,
		spinner:  sp,
		help:     help.New(),
		keys: watchKeyMap{
			Refresh: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "refresh"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init starts the spinner, the first sensor poll and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pollCmd(), m.tickCmd())
}

// tickCmd schedules the next refresh. Exactly one tick chain runs for the
// model's lifetime; manual refreshes poll without scheduling.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd reads every sensor once, off the UI loop.
func (m Model) pollCmd() tea.Cmd {
	hub, display := m.hub, m.display
	return func() tea.Msg {
		return poll(hub, display)
	}
}

// poll enumerates the registry and reads each sensor. Per-sensor read
// failures are recorded on the row; an enumeration failure ends the poll
// with whatever rows were collected.
func poll(hub *als.Hub, display func(string) string) readingsMsg {
	msg := readingsMsg{at: time.Now()}

	it, err := hub.ListSensors()
	if err != nil {
		msg.err = err
		return msg
	}
	defer it.Close()

	for {
		s, ok, err := it.Next()
		if err != nil {
			msg.err = err
			return msg
		}
		if !ok {
			return msg
		}

		r := Reading{Name: s.Name(), Display: display(s.Name())}
		r.Lux, r.Err = s.CurrentLux()
		s.Close()
		msg.readings = append(msg.readings, r)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case readingsMsg:
		m.readings = msg.readings
		m.err = msg.err
		m.loaded = true
		m.updated = msg.at
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.pollCmd(), m.tickCmd())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			return m, m.pollCmd()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the watch screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Ambient Light Sensors"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(fmt.Sprintf("%s Querying sensors...\n", m.spinner.View()))

	case m.err != nil && len(m.readings) == 0:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")

	case len(m.readings) == 0:
		b.WriteString(UnreadableStyle.Render("No ambient light sensors found."))
		b.WriteString("\n")

	default:
		nameWidth := 0
		for _, r := range m.readings {
			if len(r.Display) > nameWidth {
				nameWidth = len(r.Display)
			}
		}
		for _, r := range m.readings {
			name := SensorNameStyle.Render(fmt.Sprintf("%-*s", nameWidth, r.Display))
			if r.Err != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", name, UnreadableStyle.Render("--")))
				continue
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", name, LuxValueStyle.Render(fmt.Sprintf("%.1f lux", r.Lux))))
		}
		if m.err != nil {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("\nEnumeration stopped early: %v", m.err)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.loaded {
		b.WriteString(FooterStyle.Render(fmt.Sprintf("Updated %s", m.updated.Format("15:04:05"))))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
