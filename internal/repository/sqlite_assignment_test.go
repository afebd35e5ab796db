package repository

import (
	"context"
	"testing"

	"github.com/martagraells/extraplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepo_AddRemoveExists(t *testing.T) {
	database := testutil.NewTestDB(t)
	children := NewSQLiteChildRepo(database)
	assignments := NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	kid := testutil.NewTestChild("Aina")
	require.NoError(t, children.Create(ctx, kid))

	ok, err := assignments.Exists(ctx, "judo", kid.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, assignments.Add(ctx, "judo", kid.ID))
	ok, err = assignments.Exists(ctx, "judo", kid.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, assignments.Remove(ctx, "judo", kid.ID))
	ok, err = assignments.Exists(ctx, "judo", kid.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssignmentRepo_AddTwiceIsNoOp(t *testing.T) {
	database := testutil.NewTestDB(t)
	children := NewSQLiteChildRepo(database)
	assignments := NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	kid := testutil.NewTestChild("Aina")
	require.NoError(t, children.Create(ctx, kid))
	require.NoError(t, assignments.Add(ctx, "judo", kid.ID))
	require.NoError(t, assignments.Add(ctx, "judo", kid.ID))

	all, err := assignments.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{kid.ID}, all["judo"], "no duplicate membership")
}

func TestAssignmentRepo_ListAllKeepsListOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	children := NewSQLiteChildRepo(database)
	assignments := NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	a := testutil.NewTestChild("Aina")
	b := testutil.NewTestChild("Pau")
	require.NoError(t, children.Create(ctx, a))
	require.NoError(t, children.Create(ctx, b))

	require.NoError(t, assignments.Add(ctx, "judo", b.ID))
	require.NoError(t, assignments.Add(ctx, "judo", a.ID))
	require.NoError(t, assignments.Add(ctx, "chess", a.ID))

	all, err := assignments.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, a.ID}, all["judo"], "assignment order is insertion order")
	assert.Equal(t, []string{a.ID}, all["chess"])
}
