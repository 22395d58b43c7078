package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chouzar/contrato/pkg/address"
	"github.com/chouzar/contrato/pkg/record"
	"github.com/chouzar/contrato/pkg/refdata"
	"github.com/chouzar/contrato/pkg/validate"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("mandatory fields only is valid", func(t *testing.T) {
		t.Parallel()

		r := address.New("America", "Washington", "Seattle")
		assert.NoError(t, address.Validate(r))
	})

	t.Run("full record is valid", func(t *testing.T) {
		t.Parallel()

		r := address.New("America", "Washington", "Seattle", "22402", "1200 1st Ave")
		assert.NoError(t, address.Validate(r))
	})

	t.Run("wrong tag is rejected", func(t *testing.T) {
		t.Parallel()

		invoice := record.New("invoice", "America", "Washington", "Seattle")
		assert.Equal(t, validate.KindTypeTag, validate.KindOf(address.Validate(invoice)))
	})

	t.Run("below mandatory minimum fails on arity", func(t *testing.T) {
		t.Parallel()

		r := address.New("America", "Washington")
		err := address.Validate(r)
		require.Error(t, err)
		assert.Equal(t, validate.KindArity, validate.KindOf(err))
	})

	t.Run("zip code boundaries", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name string
			zip  string
			want validate.Kind
		}{
			{name: "five digits is valid", zip: "22402", want: ""},
			{name: "four digits is malformed", zip: "2402", want: validate.KindFormat},
			{name: "non-digit is malformed", zip: "22A02", want: validate.KindFormat},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				r := address.New("America", "Washington", "Seattle", tc.zip)
				err := address.Validate(r)
				if tc.want == "" {
					assert.NoError(t, err)
					return
				}
				require.Error(t, err)
				assert.Equal(t, tc.want, validate.KindOf(err))
			})
		}
	})

	t.Run("relational scenarios", func(t *testing.T) {
		t.Parallel()

		t.Run("associated country and state", func(t *testing.T) {
			t.Parallel()

			r := address.New("México", "Baja California", "Mexicali")
			assert.NoError(t, address.Validate(r))
		})

		t.Run("known country with foreign state", func(t *testing.T) {
			t.Parallel()

			r := address.New("México", "Viejo Tigre", "Nowhere")
			err := address.Validate(r)
			require.Error(t, err)
			assert.Equal(t, validate.KindRelationValue, validate.KindOf(err))
		})

		t.Run("unknown country is distinct from wrong state", func(t *testing.T) {
			t.Parallel()

			r := address.New("USA", "Nevada", "Las Vegas")
			err := address.Validate(r)
			require.Error(t, err)
			assert.Equal(t, validate.KindRelationKey, validate.KindOf(err))
		})

		t.Run("failure message identifies the offending state", func(t *testing.T) {
			t.Parallel()

			r := address.New("America", "Not that Washington", "Seattle")
			err := address.Validate(r)
			require.Error(t, err)

			failure, ok := validate.AsFailure(err)
			require.True(t, ok)
			assert.Equal(t, validate.KindRelationValue, failure.Kind)
			assert.Contains(t, failure.Reason, `"Not that Washington" is not part of "America"`)
		})
	})
}

func TestNewPipeline(t *testing.T) {
	t.Parallel()

	t.Run("declares predicates in structural-first order", func(t *testing.T) {
		t.Parallel()

		pipeline := address.NewPipeline(address.Regions)
		assert.Equal(t, []string{"shape", "type_tag", "arity", "zip_code", "region"}, pipeline.Predicates())
	})

	t.Run("accepts a custom regions table", func(t *testing.T) {
		t.Parallel()

		regions := refdata.New(map[string][]string{
			"Atlantis": {"Poseidonis"},
		})
		pipeline := address.NewPipeline(regions)

		assert.NoError(t, pipeline.Validate(address.New("Atlantis", "Poseidonis", "The Deep")))
		assert.Equal(t, validate.KindRelationKey, validate.KindOf(pipeline.Validate(address.New("America", "Washington", "Seattle"))))
	})
}
