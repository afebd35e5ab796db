package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveChildID resolves a kid identifier which can be:
//   - A name (case-insensitive, must be unique in the roster)
//   - A full UUID
//   - A UUID prefix
func resolveChildID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("kid name or ID is required")
	}

	children, err := app.Roster.ListChildren(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	var named []string
	for _, c := range children {
		if strings.EqualFold(c.Name, input) {
			named = append(named, c.ID)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return "", fmt.Errorf("kid name %q is ambiguous (%d matches), use an ID", input, len(named))
	}

	// 2. Exact UUID match
	for _, c := range children {
		if c.ID == input {
			return c.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, c := range children {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("kid not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("kid ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveActivityID resolves an activity identifier against the catalog,
// accepting the exact ID or a unique prefix.
func resolveActivityID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("activity ID is required")
	}
	if a := app.Catalog.ByID(input); a != nil {
		return a.ID, nil
	}

	var matches []string
	for _, a := range app.Catalog.Activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity not found: %q (see `extraplan catalog`)", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
