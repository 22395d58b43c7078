package refdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chouzar/contrato/pkg/refdata"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses key to values mapping", func(t *testing.T) {
		t.Parallel()

		doc := []byte(`
America:
  - Washington
  - Oregon
México:
  - Baja California
`)
		table, err := refdata.ParseYAML(doc)
		require.NoError(t, err)

		values, err := table.Lookup("México")
		require.NoError(t, err)
		assert.Equal(t, []string{"Baja California"}, values)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := refdata.ParseYAML([]byte("America: {nested: wrong"))
		assert.Error(t, err)
	})

	t.Run("rejects document with wrong shape", func(t *testing.T) {
		t.Parallel()

		_, err := refdata.ParseYAML([]byte("- just\n- a\n- list\n"))
		assert.Error(t, err)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()

		_, err := refdata.ParseYAML([]byte(""))
		assert.ErrorIs(t, err, refdata.ErrEmptyTable)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads table from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "regions.yaml")
		require.NoError(t, os.WriteFile(path, []byte("Canada:\n  - Alberta\n"), 0o600))

		table, err := refdata.LoadFile(path)
		require.NoError(t, err)
		assert.NoError(t, table.Contains("Canada", "Alberta"))
	})

	t.Run("missing file yields error", func(t *testing.T) {
		t.Parallel()

		_, err := refdata.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
