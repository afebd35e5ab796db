// Package catalog loads the static activity catalog: an embedded default
// shipped with the binary, optionally overridden by a JSON file for schools
// with a different offer.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/martagraells/extraplan/internal/domain"
	"github.com/martagraells/extraplan/internal/eligibility"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// activityRecord is the JSON shape of one catalog entry.
type activityRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Day          string  `json:"day"`
	Slot         string  `json:"slot"`
	Time         string  `json:"time,omitempty"`
	Grades       string  `json:"grades,omitempty"`
	Price        float64 `json:"price"`
	Billing      string  `json:"billing"`
	MaterialsFee float64 `json:"materials_fee,omitempty"`
	MaterialsKey string  `json:"materials_key,omitempty"`
	BundleKey    string  `json:"bundle_key,omitempty"`
	Provider     string  `json:"provider,omitempty"`
	Location     string  `json:"location,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

type catalogFile struct {
	Activities []activityRecord `json:"activities"`
}

// Catalog is the immutable ordered activity list plus an ID index for the
// engines.
type Catalog struct {
	Activities []*domain.Activity
	index      map[string]*domain.Activity
}

// New builds a catalog from already-validated activities, preserving order.
func New(activities []*domain.Activity) *Catalog {
	c := &Catalog{Activities: activities, index: make(map[string]*domain.Activity, len(activities))}
	for _, a := range activities {
		c.index[a.ID] = a
	}
	return c
}

// Default parses the embedded catalog. The embedded data is validated by
// tests, so a failure here means a broken build.
func Default() (*Catalog, error) {
	return parse(defaultCatalogJSON)
}

// LoadFile parses and validates a catalog override file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := validate(f.Activities); len(errs) > 0 {
		return nil, formatErrors(errs)
	}

	c := &Catalog{index: make(map[string]*domain.Activity, len(f.Activities))}
	for _, rec := range f.Activities {
		act := &domain.Activity{
			ID:           rec.ID,
			Name:         rec.Name,
			Day:          domain.Weekday(rec.Day),
			Slot:         domain.Slot(rec.Slot),
			Time:         rec.Time,
			Grades:       rec.Grades,
			Price:        rec.Price,
			Billing:      domain.BillingPeriod(rec.Billing),
			MaterialsFee: rec.MaterialsFee,
			MaterialsKey: rec.MaterialsKey,
			BundleKey:    rec.BundleKey,
			Provider:     rec.Provider,
			Location:     rec.Location,
			Notes:        rec.Notes,
		}
		c.Activities = append(c.Activities, act)
		c.index[act.ID] = act
	}
	return c, nil
}

// validate checks the catalog schema and returns every problem found.
func validate(records []activityRecord) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, rec := range records {
		prefix := fmt.Sprintf("activities[%d]", i)
		if rec.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if seen[rec.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, rec.ID))
		} else {
			seen[rec.ID] = true
		}
		if rec.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if !domain.ValidWeekdays[rec.Day] {
			errs = append(errs, fmt.Errorf("%s: invalid day %q", prefix, rec.Day))
		}
		if !domain.ValidSlots[rec.Slot] {
			errs = append(errs, fmt.Errorf("%s: invalid slot %q", prefix, rec.Slot))
		}
		if !domain.ValidBillingPeriods[rec.Billing] {
			errs = append(errs, fmt.Errorf("%s: invalid billing period %q", prefix, rec.Billing))
		}
		if rec.Price < 0 {
			errs = append(errs, fmt.Errorf("%s: price must not be negative", prefix))
		}
		if rec.MaterialsFee < 0 {
			errs = append(errs, fmt.Errorf("%s: materials_fee must not be negative", prefix))
		}
		if rec.MaterialsFee > 0 && rec.MaterialsKey == "" {
			errs = append(errs, fmt.Errorf("%s: materials_fee requires materials_key", prefix))
		}
	}
	return errs
}

func formatErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

// ByID returns the activity with the given ID, or nil.
func (c *Catalog) ByID(id string) *domain.Activity {
	return c.index[id]
}

// Index returns the ID lookup map shared with the engines. Callers must not
// mutate it.
func (c *Catalog) Index() map[string]*domain.Activity {
	return c.index
}

// EligibleFor returns a filtered view holding only the activities the
// child's grade allows, in catalog order.
func (c *Catalog) EligibleFor(child *domain.Child) *Catalog {
	var out []*domain.Activity
	for _, a := range c.Activities {
		if eligibility.IsEligible(a, child) {
			out = append(out, a)
		}
	}
	return New(out)
}

// ForDaySlot returns the activities of one day+slot cell in catalog order.
func (c *Catalog) ForDaySlot(day domain.Weekday, slot domain.Slot) []*domain.Activity {
	var out []*domain.Activity
	for _, a := range c.Activities {
		if a.Day == day && a.Slot == slot {
			out = append(out, a)
		}
	}
	return out
}
