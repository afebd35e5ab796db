// Package planfile defines the plan interchange document used for export,
// import and the on-disk legacy format: a kid roster plus an assignment map.
package planfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/martagraells/extraplan/internal/domain"
)

// KidRecord is one roster entry in the interchange document.
type KidRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Grade string `json:"grade,omitempty"`
}

// Document is the top-level interchange structure.
type Document struct {
	Kids        []KidRecord         `json:"kids"`
	Assignments map[string][]string `json:"assignments"`
}

// Parse decodes a document from raw JSON. Kid records from the pre-grade
// schema are defaulted to 1st; upgraded reports whether any were, so
// callers know to re-persist the corrected form.
func Parse(data []byte) (doc *Document, upgraded bool, err error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, false, fmt.Errorf("parsing plan document: %w", err)
	}
	for i := range d.Kids {
		if d.Kids[i].Grade == "" {
			d.Kids[i].Grade = string(domain.Grade1st)
			upgraded = true
		}
	}
	if d.Assignments == nil {
		d.Assignments = make(map[string][]string)
	}
	return &d, upgraded, nil
}

// Load reads and parses a document file.
func Load(path string) (*Document, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading plan file: %w", err)
	}
	return Parse(data)
}

// Serialize encodes the document as indented JSON.
func (d *Document) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing plan document: %w", err)
	}
	return append(data, '\n'), nil
}

// FromPlan builds an interchange document from an in-memory plan. Kids keep
// roster order; assignment lists keep their stored order.
func FromPlan(p *domain.Plan) *Document {
	doc := &Document{Assignments: make(map[string][]string, len(p.Assignments))}
	for _, c := range p.Children {
		doc.Kids = append(doc.Kids, KidRecord{
			ID:    c.ID,
			Name:  c.Name,
			Color: c.Color,
			Grade: string(c.Grade),
		})
	}
	for activityID, childIDs := range p.Assignments {
		if len(childIDs) == 0 {
			continue
		}
		doc.Assignments[activityID] = append([]string(nil), childIDs...)
	}
	return doc
}

// ToPlan converts a validated document into a plan aggregate. Grade tokens
// are normalized through ParseGrade; Validate has already rejected
// unrecognized ones.
func (d *Document) ToPlan() *domain.Plan {
	p := domain.NewPlan()
	for _, k := range d.Kids {
		grade, ok := domain.ParseGrade(k.Grade)
		if !ok {
			grade = domain.Grade(k.Grade)
		}
		p.Children = append(p.Children, &domain.Child{
			ID:    k.ID,
			Name:  k.Name,
			Color: k.Color,
			Grade: grade,
		})
	}
	for activityID, childIDs := range d.Assignments {
		if len(childIDs) == 0 {
			continue
		}
		p.Assignments[activityID] = append([]string(nil), childIDs...)
	}
	return p
}
