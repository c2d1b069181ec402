package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HC-Build/Hustle-Trail/internal/games/trail"
)

// Onboarding stages, asked in order. The three text questions come
// first, then the two perk questions, then the funding path.
const (
	stageCompany = iota
	stageProblem
	stageSolution
	stageWarmIntro
	stageEliteCollege
	stageFunding
	stageDone
)

const questionCount = 6

// fundingOptions are the funding-path choices. The bootstrap path ends
// the run before the wagon moves.
var fundingOptions = []string{
	"Raise a seed round from a top-tier VC",
	"Join a famous accelerator batch",
	"Bootstrap it from consulting revenue",
}

const bootstrapChoice = 2 // index into fundingOptions

var onboardingTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11"))

// OnboardingModel collects the founder profile before a run starts.
// It is embedded in the game model rather than run as its own program
// so SSH sessions can reuse it.
type OnboardingModel struct {
	inputs  [3]textinput.Model
	stage   int
	cursor  int // option cursor for the choice stages
	funding int

	warmIntro    bool
	eliteCollege bool

	width  int
	height int
}

// NewOnboardingModel creates the founder form. Placeholders double as
// defaults for questions the player leaves blank.
func NewOnboardingModel(width, height int) OnboardingModel {
	m := OnboardingModel{
		width:  width,
		height: height,
	}

	placeholders := [3]string{
		"Unnamed Startup",
		"Everything is broken",
		"AI-powered solution",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 40
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[0].Focus()

	return m
}

// Init starts the caret blinking.
func (m OnboardingModel) Init() tea.Cmd {
	return textinput.Blink
}

// Done reports whether every question has been answered.
func (m OnboardingModel) Done() bool {
	return m.stage == stageDone
}

// Result returns the collected profile and whether the player chose
// the bootstrap funding path. Blank text answers take the placeholder.
func (m OnboardingModel) Result() (trail.Profile, bool) {
	return trail.Profile{
		Company:      answerOr(m.inputs[0]),
		Problem:      answerOr(m.inputs[1]),
		Solution:     answerOr(m.inputs[2]),
		WarmIntro:    m.warmIntro,
		EliteCollege: m.eliteCollege,
	}, m.funding == bootstrapChoice
}

func answerOr(in textinput.Model) string {
	v := strings.TrimSpace(in.Value())
	if v == "" {
		return in.Placeholder
	}
	return v
}

// SetSize updates the form layout after a resize.
func (m *OnboardingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages while the form is active.
func (m OnboardingModel) Update(msg tea.Msg) (OnboardingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	// Non-key messages (cursor blinks) go to the focused input.
	if m.stage <= stageSolution {
		var cmd tea.Cmd
		m.inputs[m.stage], cmd = m.inputs[m.stage].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m OnboardingModel) handleKey(msg tea.KeyMsg) (OnboardingModel, tea.Cmd) {
	if m.stage <= stageSolution {
		return m.handleTextKey(msg)
	}
	return m.handleChoiceKey(msg)
}

// handleTextKey drives the three free-text questions. Every other key
// goes straight to the focused input so typing q or z works.
func (m OnboardingModel) handleTextKey(msg tea.KeyMsg) (OnboardingModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.inputs[m.stage].Blur()
		m.stage++
		m.cursor = 0
		if m.stage <= stageSolution {
			return m, m.inputs[m.stage].Focus()
		}
		return m, nil

	case "esc":
		if m.stage > stageCompany {
			m.inputs[m.stage].Blur()
			m.stage--
			return m, m.inputs[m.stage].Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.stage], cmd = m.inputs[m.stage].Update(msg)
	return m, cmd
}

// handleChoiceKey drives the perk and funding questions.
func (m OnboardingModel) handleChoiceKey(msg tea.KeyMsg) (OnboardingModel, tea.Cmd) {
	count := 2 // yes/no
	if m.stage == stageFunding {
		count = len(fundingOptions)
	}

	switch msg.String() {
	case "up", "w", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "s", "j":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "1", "2", "3":
		pick := int(msg.String()[0] - '1')
		if pick < count {
			m.cursor = pick
			return m.selectChoice(), nil
		}
	case "enter", " ":
		return m.selectChoice(), nil
	case "esc":
		m.stage--
		m.cursor = 0
		if m.stage <= stageSolution {
			return m, m.inputs[m.stage].Focus()
		}
	}

	return m, nil
}

func (m OnboardingModel) selectChoice() OnboardingModel {
	switch m.stage {
	case stageWarmIntro:
		m.warmIntro = m.cursor == 0
	case stageEliteCollege:
		m.eliteCollege = m.cursor == 0
	case stageFunding:
		m.funding = m.cursor
	}
	m.stage++
	m.cursor = 0
	return m
}

// View renders the current question.
func (m OnboardingModel) View() string {
	if m.Done() {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(onboardingTitleStyle.Render(centerText("FOUNDER ONBOARDING", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Question %d of %d", m.stage+1, questionCount), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.prompt(), m.width))
	b.WriteString("\n\n")

	if m.stage <= stageSolution {
		// The input view carries ANSI styling, so pad on its logical width.
		pad := (m.width - m.inputs[m.stage].Width) / 2
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(m.inputs[m.stage].View())
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter: Next  |  Esc: Back", m.width))
		return b.String()
	}

	options := []string{"Yes", "No"}
	if m.stage == stageFunding {
		options = fundingOptions
	}
	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%d. %s", cursor, i+1, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back", m.width))
	return b.String()
}

func (m OnboardingModel) prompt() string {
	switch m.stage {
	case stageCompany:
		return "What is your company called?"
	case stageProblem:
		return "What problem are you solving?"
	case stageSolution:
		return "What is your solution?"
	case stageWarmIntro:
		return "Do you have a warm intro to a partner at a16z?"
	case stageEliteCollege:
		return "Did you graduate from an elite college?"
	case stageFunding:
		return "How will you fund the company?"
	}
	return ""
}
