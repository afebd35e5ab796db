package domain

import "time"

// Child is one roster entry. Color is display-only.
type Child struct {
	ID        string
	Name      string
	Color     string
	Grade     Grade
	CreatedAt time.Time
}

// DisplayID returns a short identifier for listings: the first 8 characters
// of the UUID.
func (c *Child) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
