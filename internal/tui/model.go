package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	"github.com/msto63/minilang/foundation/minilang"
	mlast "github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/token"
	"github.com/msto63/minilang/foundation/utils/stringx"
)

const helpText = "Enter: run • ↑/↓: history • :tokens • :ast • :clear • Ctrl+C: quit"

// Entry is one evaluated line of the session
type Entry struct {
	Source string
	Lines  []string
	Tokens []token.Token
	Tree   string
	RunID  string
	Err    error
}

// Options configures the REPL
type Options struct {
	Timeout    time.Duration
	ShowTokens bool
	ShowAST    bool
}

// Model is the REPL model
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	running bool
	quit    bool

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	engine  *minilang.Engine
	timeout time.Duration

	// Session state
	history    []Entry
	recall     int
	showTokens bool
	showAST    bool
	notice     string
}

// NewModel creates a new REPL model. The engine must not write output of
// its own; results are taken from the run report.
func NewModel(engine *minilang.Engine, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "x 42 y"
	ti.Prompt = "» "
	ti.Focus()
	ti.CharLimit = 4096

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	return Model{
		input:      ti,
		spinner:    sp,
		engine:     engine,
		timeout:    opts.Timeout,
		showTokens: opts.ShowTokens,
		showAST:    opts.ShowAST,
	}
}

// History returns the evaluated entries, oldest first
func (m Model) History() []Entry {
	return append([]Entry(nil), m.history...)
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit

		case "enter":
			if m.running {
				return m, nil
			}
			line := strings.TrimSpace(m.input.Value())
			if stringx.IsBlank(line) {
				return m, nil
			}
			m.input.Reset()
			m.recall = len(m.history)

			if strings.HasPrefix(line, ":") {
				return m.handleCommand(line)
			}

			m.running = true
			m.notice = ""
			return m, tea.Batch(m.evaluate(line), m.spinner.Tick)

		case "up":
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.history[m.recall].Source)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.recall < len(m.history)-1 {
				m.recall++
				m.input.SetValue(m.history[m.recall].Source)
				m.input.CursorEnd()
			} else {
				m.recall = len(m.history)
				m.input.Reset()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-6))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-6)
		}
		m.input.Width = max(10, msg.Width-8)
		m.updateContent()

	case runResultMsg:
		m.running = false
		m.history = append(m.history, msg.entry)
		m.recall = len(m.history)
		m.updateContent()

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleCommand runs a colon command
func (m Model) handleCommand(line string) (tea.Model, tea.Cmd) {
	switch line {
	case ":tokens":
		m.showTokens = !m.showTokens
		m.notice = fmt.Sprintf("token display %s", onOff(m.showTokens))
	case ":ast":
		m.showAST = !m.showAST
		m.notice = fmt.Sprintf("tree display %s", onOff(m.showAST))
	case ":clear":
		m.history = nil
		m.recall = 0
		m.notice = "history cleared"
	case ":q", ":quit":
		m.quit = true
		return m, tea.Quit
	default:
		m.notice = fmt.Sprintf("unknown command %s", line)
	}
	m.updateContent()
	return m, nil
}

// evaluate runs source through the engine off the UI goroutine
func (m Model) evaluate(source string) tea.Cmd {
	engine := m.engine
	timeout := m.timeout
	showTokens := m.showTokens
	showAST := m.showAST

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return runResultMsg{entry: Evaluate(ctx, engine, source, showTokens, showAST)}
	}
}

// Evaluate runs source and collects everything the REPL can display
func Evaluate(ctx context.Context, engine *minilang.Engine, source string, withTokens, withTree bool) Entry {
	entry := Entry{Source: source}

	report, err := engine.Run(ctx, source)
	if err != nil {
		entry.Err = err
		var mlErr *mlerror.Error
		if errors.As(err, &mlErr) {
			entry.RunID = mlErr.RequestID()
		}
	} else {
		entry.Lines = report.Lines
		entry.RunID = report.RunID
	}

	if withTokens {
		entry.Tokens, _ = engine.Tokenize(source)
	}
	if withTree {
		if expr, err := engine.Parse(source); err == nil {
			entry.Tree = mlast.ASTToString(expr)
		}
	}
	return entry
}

// View renders the UI
func (m Model) View() string {
	if m.quit {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.running {
		s.WriteString(m.spinner.View())
		s.WriteString(" running...\n")
	}

	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("minilang")
	modes := SubtitleStyle.Render(fmt.Sprintf("tokens %s · ast %s", onOff(m.showTokens), onOff(m.showAST)))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", modes)
}

func (m Model) renderFooter() string {
	status := fmt.Sprintf("%d runs", len(m.history))
	if m.notice != "" {
		status = m.notice
	}
	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			helpText,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(helpText)-lipgloss.Width(status)-4)),
			status,
		),
	)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, entry := range m.history {
		content.WriteString(RenderEntry(entry, m.showTokens, m.showAST))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// RenderEntry renders one history entry
func RenderEntry(entry Entry, withTokens, withTree bool) string {
	var s strings.Builder

	s.WriteString(PromptStyle.Render("» "))
	s.WriteString(entry.Source)
	s.WriteString("\n")

	if withTokens && len(entry.Tokens) > 0 {
		parts := make([]string, len(entry.Tokens))
		for i, tok := range entry.Tokens {
			parts[i] = tok.String()
		}
		s.WriteString(SystemMessageStyle.Render("tokens: " + strings.Join(parts, " ")))
		s.WriteString("\n")
	}
	if withTree && entry.Tree != "" {
		s.WriteString(SystemMessageStyle.Render(strings.TrimSuffix(entry.Tree, "\n")))
		s.WriteString("\n")
	}

	if entry.Err != nil {
		s.WriteString(RenderError(entry.Err.Error()))
		s.WriteString("\n")
		return s.String()
	}

	if len(entry.Lines) == 0 {
		s.WriteString(SystemMessageStyle.Render("(no output)"))
		s.WriteString("\n")
	}
	for _, line := range entry.Lines {
		if strings.HasPrefix(line, "Factor:") {
			s.WriteString(FactorStyle.Render(line))
		} else {
			s.WriteString(IdentifierStyle.Render(line))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Message types for async operations
type runResultMsg struct {
	entry Entry
}
