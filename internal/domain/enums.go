package domain

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays lists school days in report order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// ValidWeekdays is the canonical set of accepted weekday strings.
var ValidWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true,
}

func (d Weekday) Label() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	default:
		return string(d)
	}
}

type Slot string

const (
	SlotMidday    Slot = "midday"
	SlotAfternoon Slot = "afternoon"
)

// Slots lists daily blocks in report order: midday before afternoon.
var Slots = []Slot{SlotMidday, SlotAfternoon}

// ValidSlots is the canonical set of accepted slot strings.
var ValidSlots = map[string]bool{"midday": true, "afternoon": true}

func (s Slot) Label() string {
	switch s {
	case SlotMidday:
		return "Midday"
	case SlotAfternoon:
		return "Afternoon"
	default:
		return string(s)
	}
}

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingTerm    BillingPeriod = "term"
)

// ValidBillingPeriods is the canonical set of accepted billing period strings.
var ValidBillingPeriods = map[string]bool{"monthly": true, "term": true}
