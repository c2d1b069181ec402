package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func typeText(m OnboardingModel, s string) OnboardingModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestOnboardingFullFlow(t *testing.T) {
	m := NewOnboardingModel(80, 24)

	m = typeText(m, "Pied Piper")
	m, _ = m.Update(enterKey)
	m = typeText(m, "Storage is too expensive")
	m, _ = m.Update(enterKey)
	m = typeText(m, "Middle-out compression")
	m, _ = m.Update(enterKey)

	// Warm intro: yes
	m, _ = m.Update(enterKey)
	// Elite college: no
	m, _ = m.Update(keyRunes("2"))
	// Funding: VC route
	m, _ = m.Update(keyRunes("1"))

	if !m.Done() {
		t.Fatal("form should be done after six answers")
	}

	p, bootstrap := m.Result()
	if bootstrap {
		t.Error("VC route should not be the bootstrap path")
	}
	if p.Company != "Pied Piper" {
		t.Errorf("company = %q, want Pied Piper", p.Company)
	}
	if p.Problem != "Storage is too expensive" {
		t.Errorf("problem = %q", p.Problem)
	}
	if p.Solution != "Middle-out compression" {
		t.Errorf("solution = %q", p.Solution)
	}
	if !p.WarmIntro {
		t.Error("warm intro should be set")
	}
	if p.EliteCollege {
		t.Error("elite college should not be set")
	}
}

func TestOnboardingBlankAnswersTakePlaceholders(t *testing.T) {
	m := NewOnboardingModel(80, 24)

	// Enter through every question, pick the bootstrap path at the end
	for i := 0; i < 5; i++ {
		m, _ = m.Update(enterKey)
	}
	if m.stage != stageFunding {
		t.Fatalf("stage = %d, want funding", m.stage)
	}
	m, _ = m.Update(keyRunes("3"))

	if !m.Done() {
		t.Fatal("form should be done")
	}

	p, bootstrap := m.Result()
	if !bootstrap {
		t.Error("option 3 should be the bootstrap path")
	}
	if p.Company != "Unnamed Startup" {
		t.Errorf("blank company = %q, want placeholder", p.Company)
	}
	if p.Problem != "Everything is broken" {
		t.Errorf("blank problem = %q, want placeholder", p.Problem)
	}
	if p.Solution != "AI-powered solution" {
		t.Errorf("blank solution = %q, want placeholder", p.Solution)
	}
}

func TestOnboardingBackKeepsAnswers(t *testing.T) {
	m := NewOnboardingModel(80, 24)

	m = typeText(m, "Hooli")
	m, _ = m.Update(enterKey)
	if m.stage != stageProblem {
		t.Fatalf("stage = %d, want problem", m.stage)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageCompany {
		t.Fatalf("esc should return to the company question, got stage %d", m.stage)
	}
	if m.inputs[0].Value() != "Hooli" {
		t.Errorf("company answer lost on back: %q", m.inputs[0].Value())
	}

	// Esc at the first question stays put
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageCompany {
		t.Errorf("esc at the first question should stay, got stage %d", m.stage)
	}
}

func TestOnboardingChoiceCursorBounds(t *testing.T) {
	m := NewOnboardingModel(80, 24)
	for i := 0; i < 5; i++ {
		m, _ = m.Update(enterKey)
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(down)
	}
	if m.cursor != len(fundingOptions)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(fundingOptions)-1)
	}

	up := tea.KeyMsg{Type: tea.KeyUp}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(up)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// Enter on the last option is the bootstrap path
	for i := 0; i < 2; i++ {
		m, _ = m.Update(down)
	}
	m, _ = m.Update(enterKey)
	if _, bootstrap := m.Result(); !bootstrap {
		t.Error("last funding option should be the bootstrap path")
	}
}

func TestOnboardingTypingQDoesNotQuit(t *testing.T) {
	m := NewOnboardingModel(80, 24)

	m = typeText(m, "Quibi")
	if m.inputs[0].Value() != "Quibi" {
		t.Errorf("company = %q, want Quibi", m.inputs[0].Value())
	}
	if m.Done() {
		t.Error("typing should not finish the form")
	}
}

func TestOnboardingViewShowsPrompts(t *testing.T) {
	m := NewOnboardingModel(80, 24)

	prompts := []string{
		"What is your company called?",
		"What problem are you solving?",
		"What is your solution?",
		"warm intro",
		"elite college",
		"How will you fund the company?",
	}

	for i, want := range prompts {
		view := m.View()
		if !strings.Contains(view, want) {
			t.Errorf("stage %d view missing %q", i, want)
		}
		if i < 3 {
			m, _ = m.Update(enterKey)
		} else {
			m, _ = m.Update(keyRunes("1"))
		}
	}

	if !m.Done() {
		t.Error("form should be done after walking every stage")
	}
	if m.View() != "" {
		t.Error("done form should render nothing")
	}
}
