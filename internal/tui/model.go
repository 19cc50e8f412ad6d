// Package tui is the interactive diagnostic runner: name entry, adaptive
// question loop with feedback, and the final per-domain summary.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gauge/internal/diagnostic"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/report"
)

type phase int

const (
	phaseName phase = iota
	phaseLoading
	phaseQuestion
	phaseFeedback
	phaseSummary
	phaseError
)

// Model is the root Bubble Tea model for one diagnostic run.
type Model struct {
	svc      *diagnostic.Service
	reporter *report.Generator
	plan     diagnostic.Plan
	owner    string

	phase  phase
	width  int
	height int

	nameInput textinput.Model
	picker    choice

	sess    diagnostic.Session
	item    itembank.Item
	resumed bool
	shownAt time.Time

	last      *diagnostic.AnswerResult
	results   *diagnostic.Results
	narrative *report.Narrative
	errMsg    string
}

// New builds the runner. An empty owner starts with the name prompt.
func New(svc *diagnostic.Service, reporter *report.Generator, plan diagnostic.Plan, owner string) Model {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 32

	m := Model{
		svc:       svc,
		reporter:  reporter,
		plan:      plan,
		owner:     strings.TrimSpace(owner),
		nameInput: ti,
		phase:     phaseName,
	}
	if m.owner != "" {
		m.phase = phaseLoading
	}
	return m
}

type startedMsg struct {
	res *diagnostic.StartResult
	err error
}

type answeredMsg struct {
	res *diagnostic.AnswerResult
	err error
}

type summaryMsg struct {
	results   *diagnostic.Results
	narrative *report.Narrative
	err       error
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseName {
		return m.nameInput.Focus()
	}
	return m.startCmd()
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Start(context.Background(), m.owner, m.plan)
		return startedMsg{res: res, err: err}
	}
}

func (m Model) submitCmd(sessionID, itemID string, selected int, elapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.SubmitAnswer(context.Background(), sessionID, itemID, selected, elapsed)
		return answeredMsg{res: res, err: err}
	}
}

func (m Model) summaryCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		results, err := m.svc.Results(ctx, sessionID)
		if err != nil {
			return summaryMsg{err: err}
		}
		return summaryMsg{results: results, narrative: m.reporter.Narrative(ctx, results)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startedMsg:
		if msg.err != nil {
			m.phase = phaseError
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.sess = msg.res.Session
		m.item = msg.res.Item
		m.resumed = msg.res.Resumed
		m.picker = newChoice(m.item.Prompt, m.item.Options, m.item.AnswerIndex)
		m.shownAt = time.Now()
		m.phase = phaseQuestion
		return m, nil

	case answeredMsg:
		if msg.err != nil {
			m.phase = phaseError
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.last = msg.res
		m.sess = msg.res.Session
		m.phase = phaseFeedback
		return m, nil

	case summaryMsg:
		if msg.err != nil {
			m.phase = phaseError
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.results = msg.results
		m.narrative = msg.narrative
		m.phase = phaseSummary
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseName:
		if msg.String() == "enter" {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				return m, nil
			}
			m.owner = name
			m.phase = phaseLoading
			return m, m.startCmd()
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	case phaseQuestion:
		m.picker = m.picker.Update(msg)
		if m.picker.submitted {
			m.phase = phaseLoading
			return m, m.submitCmd(m.sess.ID, m.item.ID, m.picker.chosen, time.Since(m.shownAt))
		}
		return m, nil

	case phaseFeedback:
		// Any key advances.
		if m.last.Completed {
			m.phase = phaseLoading
			return m, m.summaryCmd(m.sess.ID)
		}
		m.item = *m.last.NextItem
		m.picker = newChoice(m.item.Prompt, m.item.Options, m.item.AnswerIndex)
		m.shownAt = time.Now()
		m.phase = phaseQuestion
		return m, nil

	case phaseSummary, phaseError:
		if msg.String() == "q" || msg.String() == "enter" || msg.String() == "esc" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// Run starts the program and blocks until it exits.
func Run(svc *diagnostic.Service, reporter *report.Generator, plan diagnostic.Plan, owner string) error {
	p := tea.NewProgram(New(svc, reporter, plan, owner))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running program:", err)
		return err
	}
	return nil
}
