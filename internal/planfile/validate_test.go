package planfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() *Document {
	return &Document{
		Kids: []KidRecord{
			{ID: "k1", Name: "Aina", Color: "#a3d977", Grade: "2nd"},
			{ID: "k2", Name: "Pau", Color: "#77b5d9", Grade: "I5"},
		},
		Assignments: map[string][]string{"judo": {"k1", "k2"}},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, Validate(validDoc()))
}

func TestValidate_KidErrors(t *testing.T) {
	doc := &Document{
		Kids: []KidRecord{
			{ID: "", Name: "", Grade: "banana"},
			{ID: "k1", Name: "Aina", Grade: "2nd"},
			{ID: "k1", Name: "Dup", Grade: "3rd"},
		},
		Assignments: map[string][]string{},
	}

	errs := Validate(doc)
	require.NotEmpty(t, errs)
	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	assert.Contains(t, joined, "id is required")
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, `unrecognized grade "banana"`)
	assert.Contains(t, joined, `duplicate id "k1"`)
}

func TestValidate_AssignmentErrors(t *testing.T) {
	doc := validDoc()
	doc.Assignments["judo"] = []string{"k1", "k1", "ghost"}

	errs := Validate(doc)
	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	assert.Contains(t, joined, `unknown kid id "ghost"`)
	assert.Contains(t, joined, `duplicate kid id "k1"`)
}
