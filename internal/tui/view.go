package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauge/internal/itembank"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseName:
		content = m.viewName()
	case phaseLoading:
		content = centered(m.width, dimStyle.Render("\n\n  working..."))
	case phaseQuestion:
		content = m.viewQuestion()
	case phaseFeedback:
		content = m.viewFeedback()
	case phaseSummary:
		content = m.viewSummary()
	case phaseError:
		content = m.viewError()
	}

	v.SetContent(content)
	return v
}

func (m Model) viewName() string {
	var b strings.Builder
	b.WriteString("\n" + centered(m.width, titleStyle.Render("gauge")) + "\n")
	b.WriteString(centered(m.width, dimStyle.Render("adaptive math placement")) + "\n\n")
	b.WriteString(centered(m.width, "What's your name?") + "\n\n")
	b.WriteString(centered(m.width, m.nameInput.View()) + "\n\n")
	b.WriteString(centered(m.width, keyHints([2]string{"Enter", "start"}, [2]string{"Ctrl+C", "quit"})))
	return b.String()
}

func (m Model) viewQuestion() string {
	var b strings.Builder

	header := progressLine(m.sess.QuestionsAnswered, m.sess.Plan.MaxQuestions, m.sess.CorrectAnswers)
	if m.resumed && m.sess.QuestionsAnswered > 0 {
		header += "   " + hintStyle.Render("(resumed)")
	}
	b.WriteString("  " + header + "\n")
	b.WriteString("  " + precisionBar(m.sess.SE, m.svc.Config().PrecisionSE, min(m.width-4, 48)) + "\n\n")

	card := cardStyle.Width(min(m.width-4, 72)).Render(
		dimStyle.Render(string(m.item.Domain)) + "\n\n" + m.picker.View(),
	)
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(card) + "\n\n")

	b.WriteString("  " + keyHints(
		[2]string{"↑↓", "move"},
		[2]string{"Enter", "answer"},
		[2]string{"Ctrl+C", "quit"},
	))
	return b.String()
}

func (m Model) viewFeedback() string {
	var b strings.Builder

	verdict := correctStyle.Render("Correct!")
	if !m.last.Correct {
		verdict = wrongStyle.Render("Not quite.")
	}

	b.WriteString("\n  " + verdict + "\n\n")
	card := cardStyle.Width(min(m.width-4, 72)).Render(m.picker.View())
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(card) + "\n\n")

	if m.last.Completed {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("Test finished (%s).", reasonText(string(m.last.Reason)))) + "\n\n")
		b.WriteString("  " + keyHints([2]string{"any key", "see results"}))
	} else {
		b.WriteString("  " + keyHints([2]string{"any key", "next question"}))
	}
	return b.String()
}

func (m Model) viewSummary() string {
	var b strings.Builder
	r := m.results

	b.WriteString("\n" + centered(m.width, titleStyle.Render("Results")) + "\n\n")
	b.WriteString(centered(m.width, plainStyle.Render(
		fmt.Sprintf("%d of %d correct", r.CorrectAnswers, r.QuestionsAnswered))) + "\n\n")

	var rows []string
	for _, d := range itembank.AllDomains() {
		a, ok := r.Domains[d]
		if !ok {
			continue
		}
		name := fmt.Sprintf("%-12s", d)
		if a.NoData {
			rows = append(rows, dimStyle.Render(name+" not assessed"))
			continue
		}
		band := levelGlyphs(a.Theta)
		rows = append(rows, plainStyle.Render(name)+" "+band+dimStyle.Render(fmt.Sprintf("  %d/%d", a.Correct, a.Administered)))
	}
	card := cardStyle.Render(strings.Join(rows, "\n"))
	b.WriteString(centered(m.width, card) + "\n\n")

	if m.narrative != nil {
		b.WriteString(centered(m.width, wrap(m.narrative.Summary, min(m.width-8, 68))) + "\n\n")
		for _, rec := range m.narrative.Recommendations {
			b.WriteString(centered(m.width, hintStyle.Render("• "+rec)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(centered(m.width, keyHints([2]string{"q", "quit"})))
	return b.String()
}

func (m Model) viewError() string {
	return "\n" + centered(m.width, wrongStyle.Render("Something went wrong")) + "\n\n" +
		centered(m.width, dimStyle.Render(m.errMsg)) + "\n\n" +
		centered(m.width, keyHints([2]string{"q", "quit"}))
}

// levelGlyphs renders a five-step ability scale.
func levelGlyphs(theta float64) string {
	steps := []float64{-1.5, -0.5, 0.5, 1.5}
	level := 0
	for _, s := range steps {
		if theta > s {
			level++
		}
	}
	filled := accentStyle.Render(strings.Repeat("●", level+1))
	empty := dimStyle.Render(strings.Repeat("○", 4-level))
	return filled + empty
}

func reasonText(reason string) string {
	switch reason {
	case "max_questions":
		return "question limit reached"
	case "precision_reached":
		return "estimate precise enough"
	case "exhausted":
		return "no more questions available"
	case "estimation_error":
		return "scoring stopped early"
	default:
		return reason
	}
}

// wrap breaks text on spaces to fit the width.
func wrap(text string, width int) string {
	if width < 8 {
		return text
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		if line > 0 && line+len(word)+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
