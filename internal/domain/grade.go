package domain

import "strings"

// Grade is a school-year token on a fixed ordered scale: three pre-primary
// years (I3, I4, I5) followed by six primary years (1st..6th).
type Grade string

const (
	GradeI3  Grade = "I3"
	GradeI4  Grade = "I4"
	GradeI5  Grade = "I5"
	Grade1st Grade = "1st"
	Grade2nd Grade = "2nd"
	Grade3rd Grade = "3rd"
	Grade4th Grade = "4th"
	Grade5th Grade = "5th"
	Grade6th Grade = "6th"
)

// GradeScale lists every grade in ascending rank order.
var GradeScale = []Grade{
	GradeI3, GradeI4, GradeI5,
	Grade1st, Grade2nd, Grade3rd, Grade4th, Grade5th, Grade6th,
}

var gradeRanks = map[Grade]int{
	GradeI3: -2, GradeI4: -1, GradeI5: 0,
	Grade1st: 1, Grade2nd: 2, Grade3rd: 3,
	Grade4th: 4, Grade5th: 5, Grade6th: 6,
}

// Rank returns the grade's integer position on the scale (I3 = -2 .. 6th = 6)
// and whether the grade is a recognized token.
func (g Grade) Rank() (int, bool) {
	r, ok := gradeRanks[g]
	return r, ok
}

// ParseGrade normalizes a free-text grade token. It accepts pre-primary
// tokens "I" + digit 3-5 and primary tokens digit 1-6 + ordinal suffix
// (st/nd/rd/th), case-insensitively. Unrecognized input returns ok=false.
func ParseGrade(s string) (Grade, bool) {
	t := strings.TrimSpace(s)
	if len(t) != 2 && len(t) != 3 {
		return "", false
	}
	upper := strings.ToUpper(t)
	if len(upper) == 2 && upper[0] == 'I' && upper[1] >= '3' && upper[1] <= '5' {
		return Grade(upper), true
	}
	if len(t) == 3 && t[0] >= '1' && t[0] <= '6' {
		switch strings.ToLower(t[1:]) {
		case "st", "nd", "rd", "th":
			// Canonical suffix for the digit, regardless of which one was typed.
			return GradeScale[int(t[0]-'1')+3], true
		}
	}
	return "", false
}
