// Package tui is the live agenda screen: the current block, its task queue
// and single-key grading.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/glyph"
	"tableflip.dev/swot/pkg/schedule"
	"tableflip.dev/swot/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeCapture
	modeHelp
)

// refreshEvery drives the countdown in the header.
const refreshEvery = 15 * time.Second

// Model contains UI state.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode   mode
	view   app.AgendaView
	cursor int
	force  bool

	// capture holds the mistake text prompt after a hard grade.
	capture        textinput.Model
	captureSubject string
	captureTopic   string

	events <-chan store.Event

	status string

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "what went wrong?"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		svc:     svc,
		ctx:     context.Background(),
		mode:    modeNormal,
		capture: ti,
		status:  "j/k move, e/n/h grade, u urgent, f force, r refresh, ? help, q quit",
	}
	if events, err := svc.Watch(m.ctx); err == nil {
		m.events = events
	} else {
		m.status = "live reload off: " + err.Error()
	}
	return m
}

// Init loads the agenda and starts the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadView(), m.tick(), m.waitForChange())
}

func (m *Model) loadView() tea.Cmd {
	force := m.force
	return func() tea.Msg {
		view, err := m.svc.Agenda(m.ctx, time.Time{}, force)
		if err != nil {
			return errMsg{err}
		}
		return viewLoadedMsg{view}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m *Model) currentTask() *schedule.Task {
	tasks := m.view.Selection.Tasks
	if len(tasks) == 0 || m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return &tasks[m.cursor]
}

// messages
type errMsg struct{ err error }
type viewLoadedMsg struct{ view app.AgendaView }
type tickMsg struct{}
type storeChangedMsg struct{}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case viewLoadedMsg:
		m.view = msg.view
		if max := len(m.view.Selection.Tasks) - 1; m.cursor > max {
			m.cursor = 0
		}
		if m.view.Notice != "" {
			m.status = m.view.Notice
		}
	case tickMsg:
		cmds = append(cmds, m.loadView(), m.tick())
	case storeChangedMsg:
		cmds = append(cmds, m.loadView(), m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeCapture:
			switch msg.String() {
			case "enter":
				text := strings.TrimSpace(m.capture.Value())
				if text != "" {
					if _, err := m.svc.RecordMistake(m.ctx, m.captureSubject, m.captureTopic, text); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "mistake recorded"
					}
				} else {
					m.status = "capture skipped, topic keeps its pending flag"
				}
				m.leaveCapture(&cmds)
			case "esc":
				m.status = "capture skipped, topic keeps its pending flag"
				m.leaveCapture(&cmds)
			default:
				var cmd tea.Cmd
				m.capture, cmd = m.capture.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "j", "down":
				if m.cursor < len(m.view.Selection.Tasks)-1 {
					m.cursor++
				}
			case "k", "up":
				if m.cursor > 0 {
					m.cursor--
				}
			case "e", "n", "h":
				m.grade(msg.String(), &cmds)
			case "u":
				if task := m.currentTask(); task != nil {
					if _, err := m.svc.ToggleUrgent(m.ctx, task.Subject, task.Topic.Name); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						cmds = append(cmds, m.loadView())
					}
				}
			case "f":
				m.force = !m.force
				if m.force {
					m.status = "forced study mode on"
				} else {
					m.status = "forced study mode off"
				}
				cmds = append(cmds, m.loadView())
			case "r":
				cmds = append(cmds, m.loadView())
			case "?":
				m.mode = modeHelp
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// grade applies the outcome under the cursor; a hard grade opens the
// mistake capture prompt.
func (m *Model) grade(key string, cmds *[]tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		return
	}
	o, err := schedule.ParseOutcome(key)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	t, err := m.svc.Grade(m.ctx, task.Subject, task.Topic.Name, o)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.status = fmt.Sprintf("%s graded %s, next %s", t.Name, o, t.NextReview)

	if o == schedule.Hard {
		m.mode = modeCapture
		m.captureSubject = task.Subject
		m.captureTopic = task.Topic.Name
		m.capture.SetValue("")
		if cmd := m.capture.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
		return
	}
	*cmds = append(*cmds, m.loadView())
}

func (m *Model) leaveCapture(cmds *[]tea.Cmd) {
	m.mode = modeNormal
	m.captureSubject = ""
	m.captureTopic = ""
	m.capture.Reset()
	m.capture.Blur()
	*cmds = append(*cmds, m.loadView())
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	restStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Italic(true)
	planStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Italic(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
)

// View renders the whole screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	sel := m.view.Selection
	switch {
	case sel.Resting():
		b.WriteString(restStyle.Render("rest block, no tasks. Books closed."))
	case sel.Planning():
		b.WriteString(planStyle.Render("planning block: review the week and walk the error log."))
	case len(sel.Tasks) == 0:
		b.WriteString(faintStyle.Render("nothing due, get ahead or rest"))
	default:
		for i, task := range sel.Tasks {
			b.WriteString(m.taskLine(i, task))
			b.WriteString("\n")
		}
		if sel.Hidden > 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf("…and %d more waiting", sel.Hidden)))
			b.WriteString("\n")
		}
	}

	if m.mode == modeCapture {
		b.WriteString("\n" + headerStyle.Render("Mistake: ") + m.capture.View())
	}
	if m.mode == modeHelp {
		help := "Keys: j/k move, e easy, n normal, h hard (then record the mistake), u toggle urgent, f force study, r refresh, q quit"
		b.WriteString("\n" + faintStyle.Italic(true).Render(help))
	}

	b.WriteString("\n\n" + faintStyle.Render(m.status))
	return b.String()
}

func (m Model) header() string {
	blk := m.view.Block
	label := blk.Label
	if label == "" {
		label = "Idle / Buffer"
	}
	head := headerStyle.Render(label)

	meta := string(m.view.Selection.Effective)
	if m.force && m.view.Selection.Effective != blk.Type {
		meta += " (forced)"
	}
	if blk.Minutes > 0 && !blk.End.IsZero() {
		remaining := time.Until(blk.End).Round(time.Minute)
		if remaining > 0 {
			meta += fmt.Sprintf(" · %d min left", int(remaining.Minutes()))
		}
	}
	return head + "  " + faintStyle.Render(meta)
}

func (m Model) taskLine(i int, task schedule.Task) string {
	indicator := "  "
	if i == m.cursor {
		indicator = cursorStyle.Render("→ ")
	}
	marker := "  "
	switch {
	case task.Topic.ExtraQueue:
		marker = glyph.Urgent
	case i == 0:
		marker = glyph.Frog
	}
	line := fmt.Sprintf("%s%s %s · %s  %s  %s",
		indicator, marker, task.Subject, task.Topic.Name,
		glyph.LevelBar(task.Topic.Level), overdue(task.DaysOverdue))
	if m.view.Selection.MinutesPerTask > 0 {
		line += faintStyle.Render(fmt.Sprintf("  %d min", m.view.Selection.MinutesPerTask))
	}
	return line
}

func overdue(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%d d overdue", days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d d", -days)
	}
}

// Run is the program entry.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
