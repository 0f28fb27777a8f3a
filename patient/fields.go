package patient

// Column names, shared by the form, the JSON API and the model schema.
const (
	FieldAge            = "Age"
	FieldSex            = "Sex"
	FieldChestPainType  = "ChestPainType"
	FieldRestingBP      = "RestingBP"
	FieldCholesterol    = "Cholesterol"
	FieldFastingBS      = "FastingBS"
	FieldRestingECG     = "RestingECG"
	FieldMaxHR          = "MaxHR"
	FieldExerciseAngina = "ExerciseAngina"
	FieldOldpeak        = "Oldpeak"
	FieldSTSlope        = "ST_Slope"
)

// Kind is the widget type used to collect a field.
type Kind string

const (
	KindInteger Kind = "integer"
	KindReal    Kind = "real"
	KindChoice  Kind = "choice"
)

// Group places a widget on the page.
type Group string

const (
	GroupTop   Group = "top"
	GroupLeft  Group = "left"
	GroupRight Group = "right"
)

// Field describes the widget that collects one record column. Min, Max and
// Step apply to numeric kinds, Options to choices. Default is the widget's
// initial value in form encoding.
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Help    string   `json:"help,omitempty"`
	Kind    Kind     `json:"kind"`
	Min     float64  `json:"min,omitempty"`
	Max     float64  `json:"max,omitempty"`
	Step    float64  `json:"step,omitempty"`
	Default string   `json:"default"`
	Options []string `json:"options,omitempty"`
	Group   Group    `json:"group"`
}

// Numeric reports whether the field is collected with a number input.
func (f Field) Numeric() bool {
	return f.Kind == KindInteger || f.Kind == KindReal
}

var fields = []Field{
	{Name: FieldAge, Label: "How old are You?", Kind: KindInteger, Min: 1, Max: 120, Step: 1, Default: "40", Group: GroupTop},

	{Name: FieldFastingBS, Label: "Fasting Blood Sugar", Help: "1 is Yes/ 0 is No", Kind: KindChoice, Options: []string{"1.0", "0.0"}, Default: "1.0", Group: GroupLeft},
	{Name: FieldOldpeak, Label: "Oldpeak (ST depression induced by exercise)", Help: "ST depression induced by exercise relative to rest", Kind: KindReal, Min: -2.6, Max: 6.2, Step: 0.01, Default: "1", Group: GroupLeft},
	{Name: FieldMaxHR, Label: "Max Heart Rate Achieved", Help: "Maximum heart rate", Kind: KindReal, Min: 60, Max: 202, Step: 0.01, Default: "150", Group: GroupLeft},
	{Name: FieldRestingBP, Label: "Resting Blood Pressure (mm Hg)", Help: "Blood pressure when resting", Kind: KindInteger, Min: 80, Max: 200, Step: 1, Default: "120", Group: GroupLeft},
	{Name: FieldCholesterol, Label: "Cholesterol (mg/dL)", Help: "Total cholesterol level", Kind: KindInteger, Min: 100, Max: 603, Step: 1, Default: "200", Group: GroupLeft},

	{Name: FieldChestPainType, Label: "Chest Pain Type", Kind: KindChoice, Options: []string{"NAP", "ASY", "TA", "ATA"}, Default: "NAP", Group: GroupRight},
	{Name: FieldRestingECG, Label: "Resting ECG Results", Kind: KindChoice, Options: []string{"Normal", "LVH", "ST"}, Default: "Normal", Group: GroupRight},
	{Name: FieldSex, Label: "Sex", Kind: KindChoice, Options: []string{"M", "F"}, Default: "M", Group: GroupRight},
	{Name: FieldExerciseAngina, Label: "Exercise-Induced Angina", Kind: KindChoice, Options: []string{"Y", "N"}, Default: "Y", Group: GroupRight},
	{Name: FieldSTSlope, Label: "Slope of the Peak Exercise ST Segment", Kind: KindChoice, Options: []string{"Up", "Flat", "Down"}, Default: "Up", Group: GroupRight},
}

// Fields returns the widget metadata in page order.
func Fields() []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f
		out[i].Options = append([]string(nil), f.Options...)
	}
	return out
}

// Lookup finds a field by column name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ColumnNames returns the record columns in training order.
func ColumnNames() []string {
	return []string{
		FieldAge,
		FieldSex,
		FieldChestPainType,
		FieldRestingBP,
		FieldCholesterol,
		FieldFastingBS,
		FieldRestingECG,
		FieldMaxHR,
		FieldExerciseAngina,
		FieldOldpeak,
		FieldSTSlope,
	}
}
