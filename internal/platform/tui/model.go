package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/scores"
)

// Layout constants
const (
	sidebarWidth    = 36 // Leaderboard column, including border
	minGameWidth    = 40 // Narrowest screen the game is given when a sidebar is shown
	footerHeight    = 1  // Status / prompt line under the game
	requestTimeout  = 5 * time.Second
	helpLine        = "←/→ move  ↓ soft  space drop  z/x rotate  c hold  p pause  r restart  q quit"
	defaultNameHint = "PLAYER"
)

// GameOverNotifier is implemented by games that report the final score
// when a session ends.
type GameOverNotifier interface {
	OnGameOver(fn func(finalScore int))
}

// gameOverEvent is written by the game's hook during Step and read by the
// model after it. It is shared by pointer so value copies of Model see it.
type gameOverEvent struct {
	fired bool
	score int
}

// scoreSubmittedMsg reports the outcome of a background submission.
type scoreSubmittedMsg struct {
	err error
}

// leaderboardMsg carries a freshly loaded leaderboard.
type leaderboardMsg struct {
	records []scores.Record
	err     error
}

// Options configures the game model.
type Options struct {
	// Backend receives scores and serves the leaderboard. Nil disables
	// the prompt and the sidebar.
	Backend scores.Backend

	// PlayerName pre-fills the name prompt. Empty means "PLAYER".
	PlayerName string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	backend    scores.Backend
	playerName string

	gameOver    *gameOverEvent
	prompt      textinput.Model
	prompting   bool
	promptScore int
	status      string
	leaderboard []scores.Record

	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	name := strings.TrimSpace(opts.PlayerName)
	if name == "" {
		name = defaultNameHint
	}

	prompt := textinput.New()
	prompt.Prompt = "Name: "
	prompt.Placeholder = defaultNameHint
	prompt.CharLimit = scores.MaxNameLen

	event := &gameOverEvent{}
	if n, ok := game.(GameOverNotifier); ok {
		n.OnGameOver(func(finalScore int) {
			event.fired = true
			event.score = finalScore
		})
	}

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		backend:    opts.Backend,
		playerName: name,
		gameOver:   event,
		prompt:     prompt,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.gameArea())
	return m
}

// showSidebar reports whether the leaderboard column fits next to the game.
func (m Model) showSidebar() bool {
	return m.backend != nil && m.width >= minGameWidth+sidebarWidth
}

// gameArea returns the screen size handed to the game.
func (m Model) gameArea() (int, int) {
	w := m.width
	if m.showSidebar() {
		w -= sidebarWidth
	}
	return max(w, 0), max(m.height-footerHeight, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), m.fetchLeaderboard())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case scoreSubmittedMsg:
		// Submission failures are dropped; play goes on regardless.
		m.status = ""
		if msg.err == nil {
			m.status = "Score saved"
		}
		return m, m.fetchLeaderboard()

	case leaderboardMsg:
		if msg.err == nil {
			m.leaderboard = msg.records
		}
		return m, nil
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handlePromptKey feeds keys to the name prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.prompt.Value())
		if name == "" {
			name = defaultNameHint
		}
		m.closePrompt()
		m.status = "Saving score..."
		return m, submitCmd(m.backend, name, m.promptScore)
	case "esc":
		m.closePrompt()
		m.status = "Saving score..."
		return m, submitCmd(m.backend, defaultNameHint, m.promptScore)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt(score int) tea.Cmd {
	m.prompting = true
	m.promptScore = score
	m.prompt.SetValue(m.playerName)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
}

// handleResize processes window resize events. The game keeps running
// and adapts its layout to the new screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(m.gameArea())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if restarting {
		m.status = ""
	}

	if m.gameOver.fired {
		m.gameOver.fired = false
		if m.backend != nil {
			cmds = append(cmds, m.openPrompt(m.gameOver.score))
		}
	}

	return m, tea.Batch(cmds...)
}

// submitCmd sends the score in the background.
func submitCmd(backend scores.Backend, name string, score int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return scoreSubmittedMsg{err: backend.Submit(ctx, name, float64(score))}
	}
}

// fetchLeaderboard loads the top scores in the background.
func (m Model) fetchLeaderboard() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		records, err := backend.Leaderboard(ctx, scores.DefaultLimit)
		return leaderboardMsg{records: records, err: err}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.showSidebar() {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, m.renderSidebar())
	}

	return view + "\n" + m.renderFooter()
}

// renderSidebar draws the leaderboard column.
func (m Model) renderSidebar() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("TOP 10"))
	b.WriteString("\n\n")

	if len(m.leaderboard) == 0 {
		b.WriteString(dimStyle.Render("No scores yet"))
	}
	for i, r := range m.leaderboard {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%2d. %-*s %8d", i+1, scores.MaxNameLen, truncate(r.Name, scores.MaxNameLen), r.Score)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(sidebarWidth - 2).
		Render(b.String())
}

// renderFooter draws the prompt, the last status message or key help.
func (m Model) renderFooter() string {
	if m.prompting {
		hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
			Render("  enter to submit, esc to skip")
		return m.prompt.View() + hint
	}

	text := helpLine
	if m.status != "" {
		text = m.status
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(truncate(text, m.width))
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Prompting reports whether the name prompt is open.
func (m Model) Prompting() bool {
	return m.prompting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
