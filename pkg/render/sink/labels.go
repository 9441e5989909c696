package sink

// Labels is the table of fixed-language strings drawn on the diagrams.
// A suffix left empty drops the parenthesized part of its label.
type Labels struct {
	SideTitle  string `toml:"side_title" json:"sideTitle"`
	FrontTitle string `toml:"front_title" json:"frontTitle"`

	FlangeDiameter  string `toml:"flange_diameter" json:"flangeDiameter"`
	BarrelDiameter  string `toml:"barrel_diameter" json:"barrelDiameter"`
	ArborHole       string `toml:"arbor_hole" json:"arborHole"`
	DrumThickness   string `toml:"drum_thickness" json:"drumThickness"`
	FlangeThickness string `toml:"flange_thickness" json:"flangeThickness"`
	Width           string `toml:"width" json:"width"`

	Unit       string `toml:"unit" json:"unit"`
	Scale      string `toml:"scale" json:"scale"`
	ScaleUnits string `toml:"scale_units" json:"scaleUnits"`
}

// DefaultLabels returns the Georgian label table.
func DefaultLabels() Labels {
	return Labels{
		SideTitle:  "Wooden reel side view",
		FrontTitle: "Wooden reel front view",

		FlangeDiameter:  "ბარაბნის Ø",
		BarrelDiameter:  "გულის Ø",
		ArborHole:       "ნახვრეტის დიამეტრი",
		DrumThickness:   "გულის სისქე",
		FlangeThickness: "გვერდის სისქე",
		Width:           "შიდა სიგანე",

		Unit:       "mm",
		Scale:      "Scale",
		ScaleUnits: "px/mm",
	}
}

// Merge returns l with every empty field taken from base.
func (l Labels) Merge(base Labels) Labels {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Labels{
		SideTitle:       pick(l.SideTitle, base.SideTitle),
		FrontTitle:      pick(l.FrontTitle, base.FrontTitle),
		FlangeDiameter:  pick(l.FlangeDiameter, base.FlangeDiameter),
		BarrelDiameter:  pick(l.BarrelDiameter, base.BarrelDiameter),
		ArborHole:       pick(l.ArborHole, base.ArborHole),
		DrumThickness:   pick(l.DrumThickness, base.DrumThickness),
		FlangeThickness: pick(l.FlangeThickness, base.FlangeThickness),
		Width:           pick(l.Width, base.Width),
		Unit:            pick(l.Unit, base.Unit),
		Scale:           pick(l.Scale, base.Scale),
		ScaleUnits:      pick(l.ScaleUnits, base.ScaleUnits),
	}
}

// dimension builds "<value> <unit> (<suffix>)".
func (l Labels) dimension(f Format, mm float64, suffix string) string {
	s := f.MM(mm) + " " + l.Unit
	if suffix != "" {
		s += " (" + suffix + ")"
	}
	return s
}

// scaleNote builds "<Scale>: <value> <units>".
func (l Labels) scaleNote(f Format, scale float64) string {
	return l.Scale + ": " + f.Unit(scale) + " " + l.ScaleUnits
}
