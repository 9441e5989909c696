package reel

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Field names as they appear on the wire (forms, JSON, design files).
const (
	FieldFlangeDiameter    = "flangeDiameter"
	FieldBarrelDiameter    = "barrelDiameter"
	FieldWidth             = "width"
	FieldArborHoleDiameter = "arborHoleDiameter"
	FieldFlangeThickness   = "flangeThickness"
	FieldDrumThickness     = "drumThickness"
)

// Dimensions describes a reel in millimeters.
//
// The validate tags are the single source of the accepted ranges: the lower
// bound is exclusive, the upper bound inclusive.
type Dimensions struct {
	FlangeDiameter    float64 `json:"flangeDiameter" yaml:"flangeDiameter" toml:"flangeDiameter" validate:"gt=50,lte=5000" label:"flange diameter"`
	BarrelDiameter    float64 `json:"barrelDiameter" yaml:"barrelDiameter" toml:"barrelDiameter" validate:"gt=10,lte=4999" label:"core diameter"`
	Width             float64 `json:"width" yaml:"width" toml:"width" validate:"gt=10,lte=5000" label:"inner width"`
	ArborHoleDiameter float64 `json:"arborHoleDiameter" yaml:"arborHoleDiameter" toml:"arborHoleDiameter" validate:"gt=5,lte=500" label:"arbor hole diameter"`
	FlangeThickness   float64 `json:"flangeThickness" yaml:"flangeThickness" toml:"flangeThickness" validate:"gt=5,lte=100" label:"flange thickness"`
	DrumThickness     float64 `json:"drumThickness" yaml:"drumThickness" toml:"drumThickness" validate:"gt=5,lte=200" label:"drum thickness"`
}

// Default returns the record presented for an empty request.
func Default() Dimensions {
	return Dimensions{
		FlangeDiameter:    1400,
		BarrelDiameter:    700,
		Width:             880,
		ArborHoleDiameter: 100,
		FlangeThickness:   60,
		DrumThickness:     30,
	}
}

// Get returns the value of the named field.
func (d Dimensions) Get(field string) (float64, bool) {
	switch field {
	case FieldFlangeDiameter:
		return d.FlangeDiameter, true
	case FieldBarrelDiameter:
		return d.BarrelDiameter, true
	case FieldWidth:
		return d.Width, true
	case FieldArborHoleDiameter:
		return d.ArborHoleDiameter, true
	case FieldFlangeThickness:
		return d.FlangeThickness, true
	case FieldDrumThickness:
		return d.DrumThickness, true
	}
	return 0, false
}

// Set assigns v to the named field. It fails for unknown field names.
func (d *Dimensions) Set(field string, v float64) error {
	switch field {
	case FieldFlangeDiameter:
		d.FlangeDiameter = v
	case FieldBarrelDiameter:
		d.BarrelDiameter = v
	case FieldWidth:
		d.Width = v
	case FieldArborHoleDiameter:
		d.ArborHoleDiameter = v
	case FieldFlangeThickness:
		d.FlangeThickness = v
	case FieldDrumThickness:
		d.DrumThickness = v
	default:
		return fmt.Errorf("unknown dimension field %q", field)
	}
	return nil
}

// FieldSpec describes one field of [Dimensions] for form builders and
// error messages.
type FieldSpec struct {
	Name  string  // wire name, e.g. "flangeDiameter"
	Label string  // human label, e.g. "flange diameter"
	Min   float64 // exclusive lower bound
	Max   float64 // inclusive upper bound
}

var fieldSpecs = buildFieldSpecs()

// Fields returns the field specs in declaration order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// Spec returns the spec for the named field.
func Spec(field string) (FieldSpec, bool) {
	for _, s := range fieldSpecs {
		if s.Name == field {
			return s, true
		}
	}
	return FieldSpec{}, false
}

func buildFieldSpecs() []FieldSpec {
	t := reflect.TypeOf(Dimensions{})
	specs := make([]FieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		spec := FieldSpec{
			Name:  jsonName(f),
			Label: f.Tag.Get("label"),
		}
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			tag, param, ok := strings.Cut(rule, "=")
			if !ok {
				continue
			}
			v, err := strconv.ParseFloat(param, 64)
			if err != nil {
				panic(fmt.Sprintf("reel: bad bound %q on %s", rule, f.Name))
			}
			switch tag {
			case "gt":
				spec.Min = v
			case "lte":
				spec.Max = v
			}
		}
		specs = append(specs, spec)
	}
	return specs
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
