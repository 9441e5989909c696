package reel

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/reeldesigner/pkg/errors"
)

// Kind classifies a violation.
type Kind string

const (
	// KindRange marks a value outside its declared bounds.
	KindRange Kind = "range"
	// KindRelational marks a value that conflicts with another field.
	KindRelational Kind = "relational"
)

// MsgBarrelNotSmaller is reported on barrelDiameter when the barrel is not
// smaller than the flange.
const MsgBarrelNotSmaller = "core diameter must be smaller than flange diameter"

// Violation is a single field-scoped validation failure.
type Violation struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Result holds every violation found for one record.
type Result struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether the record passed all checks.
func (r Result) OK() bool { return len(r.Violations) == 0 }

// ForField returns the violations attached to the named field.
func (r Result) ForField(field string) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}

// Messages groups violation messages by field.
func (r Result) Messages() map[string][]string {
	out := make(map[string][]string, len(r.Violations))
	for _, v := range r.Violations {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

// Err returns nil for a valid record, otherwise an INVALID_DIMENSIONS error
// naming every offending field.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	parts := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return errors.New(errors.ErrCodeInvalidDimensions, "%s", strings.Join(parts, "; "))
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

// Validate checks d against the range and relational rules and returns all
// violations found.
func Validate(d Dimensions) Result {
	var res Result

	if err := structValidator.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stderrors.As(err, &fieldErrs) {
			// Only returned for non-struct input.
			panic(err)
		}
		for _, fe := range fieldErrs {
			res.Violations = append(res.Violations, rangeViolation(fe.Field()))
		}
	}

	if d.BarrelDiameter >= d.FlangeDiameter {
		res.Violations = append(res.Violations, Violation{
			Field:   FieldBarrelDiameter,
			Kind:    KindRelational,
			Message: MsgBarrelNotSmaller,
		})
	}

	slices.SortStableFunc(res.Violations, func(a, b Violation) int {
		return fieldIndex(a.Field) - fieldIndex(b.Field)
	})
	return res
}

func rangeViolation(field string) Violation {
	spec, _ := Spec(field)
	return Violation{
		Field: field,
		Kind:  KindRange,
		Message: fmt.Sprintf("%s must be greater than %s and at most %s mm",
			spec.Label, formatBound(spec.Min), formatBound(spec.Max)),
	}
}

func fieldIndex(field string) int {
	for i, s := range fieldSpecs {
		if s.Name == field {
			return i
		}
	}
	return len(fieldSpecs)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
