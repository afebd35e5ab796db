package planfile

import (
	"testing"

	"github.com/martagraells/extraplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
		"kids": [{"id":"k1","name":"Aina","color":"#a3d977","grade":"2nd"}],
		"assignments": {"judo": ["k1"]}
	}`)

	doc, upgraded, err := Parse(data)
	require.NoError(t, err)
	assert.False(t, upgraded)
	require.Len(t, doc.Kids, 1)
	assert.Equal(t, "2nd", doc.Kids[0].Grade)
	assert.Equal(t, []string{"k1"}, doc.Assignments["judo"])
}

func TestParse_LegacyKidWithoutGradeDefaultsTo1st(t *testing.T) {
	data := []byte(`{
		"kids": [{"id":"k1","name":"Aina","color":"#a3d977"}],
		"assignments": {}
	}`)

	doc, upgraded, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, upgraded, "caller must re-persist the corrected document")
	assert.Equal(t, "1st", doc.Kids[0].Grade)
}

func TestParse_MissingAssignmentsMapInitialized(t *testing.T) {
	doc, _, err := Parse([]byte(`{"kids":[]}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Assignments)
}

func TestParse_Malformed(t *testing.T) {
	_, _, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	plan := domain.NewPlan()
	plan.Children = []*domain.Child{
		{ID: "k1", Name: "Aina", Color: "#a3d977", Grade: domain.Grade2nd},
		{ID: "k2", Name: "Pau", Color: "#77b5d9", Grade: domain.GradeI5},
	}
	plan.Assignments = map[string][]string{
		"judo":    {"k1"},
		"english": {"k1", "k2"},
	}

	data, err := FromPlan(plan).Serialize()
	require.NoError(t, err)

	doc, upgraded, err := Parse(data)
	require.NoError(t, err)
	assert.False(t, upgraded)
	require.Empty(t, Validate(doc))

	got := doc.ToPlan()
	require.Len(t, got.Children, 2)
	assert.Equal(t, plan.Children[0].ID, got.Children[0].ID)
	assert.Equal(t, plan.Children[1].Grade, got.Children[1].Grade)
	assert.Equal(t, plan.Assignments, got.Assignments)

	// Export of the re-imported plan is byte-identical: a fixpoint.
	again, err := FromPlan(got).Serialize()
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestFromPlan_DropsEmptyAssignmentLists(t *testing.T) {
	plan := domain.NewPlan()
	plan.Children = []*domain.Child{{ID: "k1", Name: "Aina", Grade: domain.Grade1st}}
	plan.Assignments = map[string][]string{"judo": {}}

	doc := FromPlan(plan)
	assert.Empty(t, doc.Assignments)
}
