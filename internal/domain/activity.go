package domain

// Activity is one catalog entry. The catalog is fixed configuration; nothing
// mutates activities at runtime.
type Activity struct {
	ID           string
	Name         string
	Day          Weekday
	Slot         Slot
	Time         string // optional "HH:MM-HH:MM"; empty means the whole slot
	Grades       string // free-text eligibility expression, e.g. "I4/I5-2nd"
	Price        float64
	Billing      BillingPeriod
	MaterialsFee float64 // one-time, 0 = none
	MaterialsKey string  // groups activities sharing one materials fee
	BundleKey    string  // non-empty = priced via the bundle tier, not Price

	// Display-only fields.
	Provider string
	Location string
	Notes    string
}

// Bundled reports whether the activity is priced through a bundle tier
// instead of its own Price.
func (a *Activity) Bundled() bool {
	return a.BundleKey != ""
}
