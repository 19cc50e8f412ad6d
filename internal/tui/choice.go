package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// choice is the answer picker for one question.
type choice struct {
	prompt      string
	options     []string
	answerIndex int
	selected    int
	submitted   bool
	chosen      int
}

func newChoice(prompt string, options []string, answerIndex int) choice {
	return choice{
		prompt:      prompt,
		options:     options,
		answerIndex: answerIndex,
		chosen:      -1,
	}
}

// Update handles navigation keys; Enter locks the selection in.
func (c choice) Update(msg tea.Msg) choice {
	if c.submitted {
		return c
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	switch kmsg.String() {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.options)-1 {
			c.selected++
		}
	case "enter":
		c.submitted = true
		c.chosen = c.selected
	}
	return c
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the question and options. After submission the correct
// option shows green and a wrong pick shows red.
func (c choice) View() string {
	s := promptStyle.Render(c.prompt) + "\n\n"

	for i, opt := range c.options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == c.selected && !c.submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.submitted && i == c.answerIndex:
			s += correctStyle.Render(line)
		case c.submitted && i == c.chosen:
			s += wrongStyle.Render(line)
		case c.submitted:
			s += dimStyle.Render(line)
		case i == c.selected:
			s += selectedStyle.Render(line)
		default:
			s += plainStyle.Render(line)
		}
		s += "\n"
	}

	return s
}
