package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/martagraells/extraplan/internal/cli/formatter"
	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/eligibility"
	"github.com/martagraells/extraplan/internal/schedule"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive weekly board: browse the offer and toggle assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board needs a terminal; use `assign`/`unassign` in scripts")
			}

			plan, err := app.Plan.Snapshot(context.Background())
			if err != nil {
				return err
			}
			if len(plan.Children) == 0 {
				return fmt.Errorf("no kids yet; add one with `extraplan kid add`")
			}

			_, err = tea.NewProgram(newBoardModel(app, plan)).Run()
			return err
		},
	}
}

// boardRow is one selectable line on the board: an activity under its
// day+slot heading.
type boardRow struct {
	activity *domain.Activity
}

type boardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextKid key.Binding
	Toggle  key.Binding
	Quit    key.Binding
}

var boardKeys = boardKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextKid: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next kid")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// planReloadedMsg carries a fresh plan snapshot after a toggle.
type planReloadedMsg struct {
	plan *domain.Plan
	err  error
}

// toggleFailedMsg reports a rejected toggle, e.g. a grade mismatch. The board
// stays up and shows the reason.
type toggleFailedMsg struct {
	err error
}

type boardModel struct {
	app    *App
	plan   *domain.Plan
	rows   []boardRow
	cursor int
	kidIdx int
	status string
	err    error
}

func newBoardModel(app *App, plan *domain.Plan) *boardModel {
	m := &boardModel{app: app, plan: plan}
	for _, day := range domain.Weekdays {
		for _, slot := range domain.Slots {
			for _, a := range app.Catalog.ForDaySlot(day, slot) {
				m.rows = append(m.rows, boardRow{activity: a})
			}
		}
	}
	return m
}

func (m *boardModel) kid() *domain.Child {
	return m.plan.Children[m.kidIdx]
}

// conflicted returns the current kid's conflicting activity IDs.
func (m *boardModel) conflicted() map[string]bool {
	out := make(map[string]bool)
	for _, c := range schedule.FindConflicts(m.plan, m.app.Catalog.Activities) {
		if c.Child.ID == m.kid().ID {
			out[c.ActivityA.ID] = true
			out[c.ActivityB.ID] = true
		}
	}
	return out
}

func (m *boardModel) Init() tea.Cmd { return nil }

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.plan = msg.plan
		if m.kidIdx >= len(m.plan.Children) {
			m.kidIdx = 0
		}
		m.status = ""
		return m, nil

	case toggleFailedMsg:
		m.status = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, boardKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, boardKeys.NextKid):
			m.kidIdx = (m.kidIdx + 1) % len(m.plan.Children)
			m.status = ""
		case key.Matches(msg, boardKeys.Toggle):
			if m.cursor < len(m.rows) {
				return m, m.toggle(m.rows[m.cursor].activity)
			}
		}
	}
	return m, nil
}

func (m *boardModel) toggle(a *domain.Activity) tea.Cmd {
	app, childID := m.app, m.kid().ID
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Plan.Toggle(ctx, a.ID, childID); err != nil {
			return toggleFailedMsg{err: err}
		}
		plan, err := app.Plan.Snapshot(ctx)
		return planReloadedMsg{plan: plan, err: err}
	}
}

func (m *boardModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}

	kid := m.kid()
	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Week of %s (%s)", kid.Name, kid.Grade)))
	b.WriteString("\n")

	conflicted := m.conflicted()
	var lastDay domain.Weekday
	var lastSlot domain.Slot
	for i, row := range m.rows {
		a := row.activity
		if a.Day != lastDay {
			b.WriteString(formatter.StyleHeader.Render(a.Day.Label()) + "\n")
			lastDay, lastSlot = a.Day, ""
		}
		if a.Slot != lastSlot {
			b.WriteString("  " + formatter.StyleBlue.Render(a.Slot.Label()) + "\n")
			lastSlot = a.Slot
		}
		b.WriteString(m.renderRow(i, a, kid, conflicted[a.ID]))
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ move · tab next kid · space toggle · q quit") + "\n")
	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status) + "\n")
	}
	return b.String()
}

func (m *boardModel) renderRow(i int, a *domain.Activity, kid *domain.Child, conflicted bool) string {
	cursor := "  "
	if i == m.cursor {
		cursor = formatter.StyleHeader.Render("> ")
	}

	mark := formatter.Dim("[ ]")
	if m.plan.Assigned(a.ID, kid.ID) {
		mark = formatter.StyleGreen.Render("[x]")
	}

	name := a.Name
	if !eligibility.IsEligible(a, kid) {
		name = formatter.Dim(name + " (grade)")
	}

	timeStr := a.Time
	if timeStr == "" {
		timeStr = "whole slot"
	}

	line := fmt.Sprintf("    %s%s %s %s", cursor, mark, name, formatter.Dim(timeStr))
	if conflicted {
		line += " " + formatter.StyleRed.Render("✗ clash")
	}
	return line + "\n"
}
