package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chouzar/contrato/pkg/record"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("copies field arguments", func(t *testing.T) {
		t.Parallel()

		fields := []string{"America", "Washington", "Seattle"}
		r := record.New("address", fields...)

		fields[0] = "mutated"
		got, ok := r.Field(0)
		assert.True(t, ok)
		assert.Equal(t, "America", got)
	})

	t.Run("zero fields is allowed", func(t *testing.T) {
		t.Parallel()

		r := record.New("address")
		assert.Equal(t, record.Tag("address"), r.Tag())
		assert.Equal(t, 0, r.Len())
	})
}

func TestRecord_Field(t *testing.T) {
	t.Parallel()

	r := record.New("address", "America", "Washington", "Seattle")

	t.Run("returns present field", func(t *testing.T) {
		t.Parallel()

		got, ok := r.Field(1)
		assert.True(t, ok)
		assert.Equal(t, "Washington", got)
	})

	t.Run("reports absence past field count", func(t *testing.T) {
		t.Parallel()

		got, ok := r.Field(3)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("reports absence for negative index", func(t *testing.T) {
		t.Parallel()

		_, ok := r.Field(-1)
		assert.False(t, ok)
	})
}

func TestRecord_Fields(t *testing.T) {
	t.Parallel()

	t.Run("returns a defensive copy", func(t *testing.T) {
		t.Parallel()

		r := record.New("address", "America", "Washington")
		fields := r.Fields()
		fields[0] = "mutated"

		got, ok := r.Field(0)
		assert.True(t, ok)
		assert.Equal(t, "America", got)
	})
}

func TestSchema_FieldName(t *testing.T) {
	t.Parallel()

	schema := record.Schema{
		Tag:        "address",
		MinFields:  3,
		MaxFields:  5,
		FieldNames: []string{"country", "state", "city"},
	}

	t.Run("returns declared name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "state", schema.FieldName(1))
	})

	t.Run("falls back to positional label", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "field 4", schema.FieldName(4))
	})
}

func TestSchema_Optional(t *testing.T) {
	t.Parallel()

	schema := record.Schema{Tag: "address", MinFields: 3, MaxFields: 5}

	assert.False(t, schema.Optional(0))
	assert.False(t, schema.Optional(2))
	assert.True(t, schema.Optional(3))
	assert.True(t, schema.Optional(4))
}
