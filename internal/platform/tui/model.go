package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HC-Build/Hustle-Trail/internal/core"
	"github.com/HC-Build/Hustle-Trail/internal/games/trail"
	"github.com/HC-Build/Hustle-Trail/internal/profile"
	"github.com/HC-Build/Hustle-Trail/internal/registry"
	"github.com/HC-Build/Hustle-Trail/internal/session"
	"github.com/HC-Build/Hustle-Trail/internal/storage"
)

// profileSubmitter is implemented by games that gate the run behind a
// founder profile (the trail variants).
type profileSubmitter interface {
	NeedsProfile() bool
	SubmitProfile(p trail.Profile, bootstrap bool)
}

// runReporter is implemented by games that expose a structured run
// snapshot for the history store.
type runReporter interface {
	Snapshot() trail.Snapshot
}

// ModelOptions tweaks how the game model integrates with its host.
type ModelOptions struct {
	// SavePath is the founder profile save file. Empty disables
	// persistence (SSH sessions).
	SavePath string

	// Saved is the previously loaded profile. A non-empty profile is
	// expected to have been seeded into the game already, so the
	// onboarding form stays out of the way.
	Saved profile.Data

	// Cues receives the sound cues each tick emits. Nil drops them.
	Cues CueSink

	// Session tags run records. Empty generates a fresh ID.
	Session session.ID
}

// Model is the Bubble Tea model that runs one game instance.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	cueSink    CueSink

	savePath string
	saved    profile.Data

	sessionID session.ID

	onboarding *OnboardingModel

	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current run has been recorded
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	sink := opts.Cues
	if sink == nil {
		sink = NullSink{}
	}
	sid := opts.Session
	if sid == "" {
		sid = session.NewID()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		cueSink:    sink,
		savePath:   opts.SavePath,
		saved:      opts.Saved,
		sessionID:  sid,
	}

	if _, ok := game.(profileSubmitter); ok {
		ob := NewOnboardingModel(cfg.ScreenW, cfg.ScreenH)
		m.onboarding = &ob
	}

	return m
}

// FounderProfile converts a saved profile into the game's founder
// identity so runs can skip onboarding.
func FounderProfile(d profile.Data) trail.Profile {
	return trail.Profile{
		Company:      d.CompanyName,
		Problem:      d.Problem,
		Solution:     d.Solution,
		WarmIntro:    d.WarmIntro,
		EliteCollege: d.EliteCollege,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	if m.onboarding != nil {
		return tea.Batch(m.onboarding.Init(), tickCmd(m.config.TickRate))
	}
	return tickCmd(m.config.TickRate)
}

// inOnboarding reports whether the founder form should receive input.
func (m Model) inOnboarding() bool {
	if m.onboarding == nil {
		return false
	}
	sub, ok := m.game.(profileSubmitter)
	return ok && sub.NeedsProfile()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.inOnboarding() {
		ob, cmd := m.onboarding.Update(msg)
		m.onboarding = &ob
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inOnboarding() {
		// Only ctrl+c quits while typing; q belongs to the company name.
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		ob, cmd := m.onboarding.Update(msg)
		m.onboarding = &ob
		if ob.Done() {
			(&m).submitFounder()
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// B/Esc leaves for the host menu once the run is over or paused.
	if act := m.keyMapper.MapKeyToMenuAction(msg); act == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// submitFounder hands the finished form to the game and persists the
// founder identity so the next launch skips onboarding.
func (m *Model) submitFounder() {
	sub, ok := m.game.(profileSubmitter)
	if !ok || m.onboarding == nil {
		return
	}

	p, bootstrap := m.onboarding.Result()
	sub.SubmitProfile(p, bootstrap)

	if m.savePath != "" {
		m.saved.CompanyName = p.Company
		m.saved.Problem = p.Problem
		m.saved.Solution = p.Solution
		m.saved.WarmIntro = p.WarmIntro
		m.saved.EliteCollege = p.EliteCollege
		//nolint:errcheck // Best-effort save, the run starts regardless
		profile.Save(m.savePath, m.saved)
	}
}

// handleResize processes window resize events. The trail renders from
// the destination screen size, so the run survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.onboarding != nil {
		m.onboarding.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks. Restarts are handled inside
// the game (R resets the run but keeps the profile).
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, c := range result.Cues {
		m.cueSink.Play(c)
	}

	if m.gameState.GameOver {
		if !m.runSaved {
			(&m).recordRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run and bumps the founder profile.
func (m *Model) recordRun() {
	rep, ok := m.game.(runReporter)
	if !ok {
		return
	}
	snap := rep.Snapshot()

	if m.store != nil {
		outcome := session.OutcomeLost
		switch {
		case snap.Secret:
			outcome = session.OutcomeSecret
		case snap.Won:
			outcome = session.OutcomeWon
		}

		//nolint:errcheck // Best-effort save, the ending stays on screen
		m.store.SaveRunRecord(session.RunRecord{
			GameID:       m.game.ID(),
			SessionID:    m.sessionID,
			Company:      snap.Company,
			Outcome:      outcome,
			Traction:     int(snap.Traction),
			Distance:     snap.Distance,
			Runway:       snap.Runway,
			Equity:       snap.Equity,
			Survivors:    snap.Alive,
			DurationSecs: int(snap.Tick) / m.config.TickRate,
		})
	}

	if m.savePath != "" {
		m.saved.Bump(m.gameState.Score)
		//nolint:errcheck // Best-effort save
		profile.Save(m.savePath, m.saved)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".hustle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.inOnboarding() {
		return m.onboarding.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player asked to leave entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked for the host menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
