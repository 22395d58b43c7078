package address

import (
	"github.com/chouzar/contrato/pkg/record"
	"github.com/chouzar/contrato/pkg/refdata"
	"github.com/chouzar/contrato/pkg/validate"
)

// Tag is the discriminant for address records.
const Tag record.Tag = "address"

// Field positions within an address record, in schema order.
const (
	FieldCountry = iota
	FieldState
	FieldCity
	FieldZipCode
	FieldStreet
)

// Schema declares the address shape: country, state and city are mandatory,
// zip code and street are optional trailing fields.
var Schema = record.Schema{
	Tag:        Tag,
	MinFields:  3,
	MaxFields:  5,
	FieldNames: []string{"country", "state", "city", "zip_code", "street"},
}

// Regions is the default country to states reference table.
var Regions = refdata.New(map[string][]string{
	"America": {"Washington", "Oregon", "California", "Nevada", "Texas"},
	"México":  {"Baja California", "Sonora", "Chihuahua", "Jalisco", "Yucatán"},
	"Canada":  {"British Columbia", "Alberta", "Ontario", "Quebec"},
})

// New builds an address record from positional fields in schema order.
func New(fields ...string) record.Record {
	return record.New(Tag, fields...)
}

// NewPipeline builds the validation pipeline for address records against the
// given regions table. Structural checks run ahead of content checks so a
// malformed record is rejected before its fields are dereferenced: shape,
// then tag, then arity, then zip format, then the country/state relation.
func NewPipeline(regions *refdata.Table) *validate.Pipeline {
	return validate.New(Schema, validate.With(
		validate.HasShape(Schema),
		validate.HasTag(Schema),
		validate.MinFields(Schema),
		validate.DigitsExact("zip_code", FieldZipCode, 5, "zip code"),
		validate.MemberOf("region", regions, FieldCountry, FieldState, "country", "state"),
	))
}

var defaultPipeline = NewPipeline(Regions)

// Validate checks r against the default regions table.
func Validate(r record.Record) error {
	return defaultPipeline.Validate(r)
}
