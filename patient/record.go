// Package patient holds the clinical record collected by the prediction form.
package patient

import (
	"net/url"
	"strconv"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

type ChestPainType string

const (
	ChestPainNonAnginal   ChestPainType = "NAP"
	ChestPainAsymptomatic ChestPainType = "ASY"
	ChestPainTypical      ChestPainType = "TA"
	ChestPainAtypical     ChestPainType = "ATA"
)

type RestingECG string

const (
	RestingECGNormal RestingECG = "Normal"
	RestingECGLVH    RestingECG = "LVH"
	RestingECGST     RestingECG = "ST"
)

type ExerciseAngina string

const (
	ExerciseAnginaYes ExerciseAngina = "Y"
	ExerciseAnginaNo  ExerciseAngina = "N"
)

type STSlope string

const (
	STSlopeUp   STSlope = "Up"
	STSlopeFlat STSlope = "Flat"
	STSlopeDown STSlope = "Down"
)

// Record is one patient row. Field and JSON names match the columns the
// classifier was trained on.
type Record struct {
	Age            int            `json:"Age" validate:"min=1,max=120"`
	Sex            Sex            `json:"Sex" validate:"oneof=M F"`
	ChestPainType  ChestPainType  `json:"ChestPainType" validate:"oneof=NAP ASY TA ATA"`
	RestingBP      int            `json:"RestingBP" validate:"min=80,max=200"`
	Cholesterol    int            `json:"Cholesterol" validate:"min=100,max=603"`
	FastingBS      float64        `json:"FastingBS" validate:"finite,binaryflag"`
	RestingECG     RestingECG     `json:"RestingECG" validate:"oneof=Normal LVH ST"`
	MaxHR          float64        `json:"MaxHR" validate:"finite,min=60,max=202"`
	ExerciseAngina ExerciseAngina `json:"ExerciseAngina" validate:"oneof=Y N"`
	Oldpeak        float64        `json:"Oldpeak" validate:"finite,min=-2.6,max=6.2"`
	STSlope        STSlope        `json:"ST_Slope" validate:"oneof=Up Flat Down"`
}

// Default returns the record the form starts with.
func Default() Record {
	return Record{
		Age:            40,
		Sex:            SexMale,
		ChestPainType:  ChestPainNonAnginal,
		RestingBP:      120,
		Cholesterol:    200,
		FastingBS:      1.0,
		RestingECG:     RestingECGNormal,
		MaxHR:          150.0,
		ExerciseAngina: ExerciseAnginaYes,
		Oldpeak:        1.0,
		STSlope:        STSlopeUp,
	}
}

// Row returns the record as the eleven named columns the classifier consumes.
// Numbers are float64, categories are strings.
func (r Record) Row() map[string]any {
	return map[string]any{
		FieldAge:            float64(r.Age),
		FieldSex:            string(r.Sex),
		FieldChestPainType:  string(r.ChestPainType),
		FieldRestingBP:      float64(r.RestingBP),
		FieldCholesterol:    float64(r.Cholesterol),
		FieldFastingBS:      r.FastingBS,
		FieldRestingECG:     string(r.RestingECG),
		FieldMaxHR:          r.MaxHR,
		FieldExerciseAngina: string(r.ExerciseAngina),
		FieldOldpeak:        r.Oldpeak,
		FieldSTSlope:        string(r.STSlope),
	}
}

// Values renders the record back into form values, keyed by column name.
func (r Record) Values() url.Values {
	values := url.Values{}
	values.Set(FieldAge, strconv.Itoa(r.Age))
	values.Set(FieldSex, string(r.Sex))
	values.Set(FieldChestPainType, string(r.ChestPainType))
	values.Set(FieldRestingBP, strconv.Itoa(r.RestingBP))
	values.Set(FieldCholesterol, strconv.Itoa(r.Cholesterol))
	values.Set(FieldFastingBS, formatChoiceFloat(r.FastingBS))
	values.Set(FieldRestingECG, string(r.RestingECG))
	values.Set(FieldMaxHR, formatReal(r.MaxHR))
	values.Set(FieldExerciseAngina, string(r.ExerciseAngina))
	values.Set(FieldOldpeak, formatReal(r.Oldpeak))
	values.Set(FieldSTSlope, string(r.STSlope))
	return values
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatChoiceFloat keeps one decimal so the value matches the select option.
func formatChoiceFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
