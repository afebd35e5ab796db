package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFixture(t *testing.T) (*App, *boardModel) {
	t.Helper()
	app := testApp(t)

	ctx := context.Background()
	_, err := app.Roster.AddChild(ctx, "Aina", "3rd", "")
	require.NoError(t, err)
	_, err = app.Roster.AddChild(ctx, "Pau", "I4", "")
	require.NoError(t, err)

	plan, err := app.Plan.Snapshot(ctx)
	require.NoError(t, err)
	return app, newBoardModel(app, plan)
}

func keyPress(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	// Board commands are synchronous service calls; run them inline.
	if cmd != nil {
		next, _ = next.Update(cmd())
	}
	return next
}

func TestBoard_RowsFollowCatalogOrder(t *testing.T) {
	_, m := boardFixture(t)

	require.Len(t, m.rows, 4)
	assert.Equal(t, "chess", m.rows[0].activity.ID)
	assert.Equal(t, "judo", m.rows[1].activity.ID)
	assert.Equal(t, "psycho-mon", m.rows[2].activity.ID)
	assert.Equal(t, "crafts", m.rows[3].activity.ID)
}

func TestBoard_ToggleAssignsAndUnassigns(t *testing.T) {
	app, m := boardFixture(t)

	next := keyPress(m, "space")
	board := next.(*boardModel)
	assert.True(t, board.plan.Assigned("chess", board.kid().ID))

	next = keyPress(board, "space")
	board = next.(*boardModel)
	assert.False(t, board.plan.Assigned("chess", board.kid().ID))

	plan, err := app.Plan.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plan.Assignments["chess"])
}

func TestBoard_ToggleIneligibleKeepsBoardUp(t *testing.T) {
	_, m := boardFixture(t)

	// Switch to Pau (I4), who is out of chess's 2nd-6th window.
	next := keyPress(m, "tab")
	board := next.(*boardModel)
	require.Equal(t, "Pau", board.kid().Name)

	next = keyPress(board, "space")
	board = next.(*boardModel)
	assert.NotEmpty(t, board.status)
	assert.False(t, board.plan.Assigned("chess", board.kid().ID))
}

func TestBoard_CursorStaysInBounds(t *testing.T) {
	_, m := boardFixture(t)

	for i := 0; i < 10; i++ {
		next := keyPress(m, "down")
		m = next.(*boardModel)
	}
	assert.Equal(t, len(m.rows)-1, m.cursor)

	for i := 0; i < 10; i++ {
		next := keyPress(m, "k")
		m = next.(*boardModel)
	}
	assert.Equal(t, 0, m.cursor)
}

func TestBoard_ViewFlagsClashes(t *testing.T) {
	_, m := boardFixture(t)

	// chess 12:45-13:45 and judo 13:00-14:00 overlap on Monday midday.
	next := keyPress(m, "space")
	next = keyPress(next, "down")
	next = keyPress(next, "space")

	out := next.(*boardModel).View()
	assert.Contains(t, out, "clash")
}

func TestBoard_ViewMarksAssignmentsAndGrades(t *testing.T) {
	_, m := boardFixture(t)

	next := keyPress(m, "space")
	board := next.(*boardModel)

	out := board.View()
	assert.Contains(t, out, "Aina")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "chess")
	assert.Contains(t, out, "whole slot")

	// Pau's view dims out-of-grade activities.
	next = keyPress(board, "tab")
	out = next.(*boardModel).View()
	assert.Contains(t, out, "Pau")
	assert.Contains(t, out, "(grade)")
}
