package cli

import (
	"fmt"
	"strings"

	"github.com/martagraells/extraplan/internal/domain"
	"github.com/spf13/pflag"
)

// gradeValue is a pflag.Value that validates the grade at parse time, so a
// typo fails with the list of accepted grades instead of a late service
// error.
type gradeValue struct {
	grade *domain.Grade
}

func (v *gradeValue) String() string {
	if v.grade == nil {
		return ""
	}
	return string(*v.grade)
}

func (v *gradeValue) Set(s string) error {
	g, ok := domain.ParseGrade(s)
	if !ok {
		return fmt.Errorf("unknown grade %q (accepted: %s)", s, strings.Join(gradeNames(), ", "))
	}
	*v.grade = g
	return nil
}

func (v *gradeValue) Type() string { return "grade" }

func addGradeFlag(fs *pflag.FlagSet, grade *domain.Grade) {
	fs.Var(&gradeValue{grade: grade}, "grade", "School grade (I3-I5 or 1st-6th)")
}

func gradeNames() []string {
	names := make([]string, len(domain.GradeScale))
	for i, g := range domain.GradeScale {
		names[i] = string(g)
	}
	return names
}
