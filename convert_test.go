package i18ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	table := &Table{
		Headers: []string{"key", "loc: en", "note", "LOC:fr"},
		Rows: []Record{
			{"key": "greeting", "loc: en": "Hi", "LOC:fr": "Salut"},
			{"key": "farewell", "loc: en": "Bye"},
			{"key": "fr.only", "LOC:fr": "Seulement"},
		},
	}

	t.Run("Convert_WithoutReference", func(t *testing.T) {
		res, err := Convert(table, nil, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, res.Outputs, 2)

		en, fr := res.Outputs[0], res.Outputs[1]
		assert.Equal(t, "en", en.Locale)
		assert.Equal(t, "loc: en", en.Column)
		assert.Nil(t, en.Report)
		assert.Equal(t, `{"greeting":"Hi","farewell":"Bye"}`, en.Tree.String())
		assert.Equal(t, "fr", fr.Locale)
		assert.Equal(t, `{"greeting":"Salut","fr":{"only":"Seulement"}}`, fr.Tree.String())
	})

	t.Run("Convert_WithReference", func(t *testing.T) {
		ref := tree(t, `{"farewell":"Bye","greeting":"Hi"}`)
		opts := DefaultOptions()
		opts.Missing = MissingRef

		res, err := Convert(table, ref, opts)
		require.NoError(t, err)

		en, fr := res.Outputs[0], res.Outputs[1]
		assert.Equal(t, `{"farewell":"Bye","greeting":"Hi"}`, en.Tree.String())
		assert.True(t, en.Report.Empty())

		assert.Equal(t, `{"farewell":"Bye","greeting":"Salut","fr":{"only":"Seulement"}}`, fr.Tree.String())
		assert.Equal(t, []string{"farewell"}, fr.Report.Missing)
		assert.Equal(t, []string{"fr"}, fr.Report.Extra)
		assert.Equal(t, `{"farewell":"Bye","greeting":"Hi"}`, ref.String())
	})

	t.Run("Convert_Errors", func(t *testing.T) {
		_, err := Convert(&Table{Headers: table.Headers}, nil, DefaultOptions())
		assert.ErrorIs(t, err, ErrNoRows)

		_, err = Convert(&Table{Headers: []string{"key", "en"}, Rows: table.Rows}, nil, DefaultOptions())
		assert.ErrorIs(t, err, ErrNoLocaleColumns)

		opts := DefaultOptions()
		opts.KeyColumn = "id"
		_, err = Convert(table, nil, opts)
		assert.ErrorContains(t, err, `key column "id"`)

		opts = DefaultOptions()
		opts.LocalePrefix = ""
		_, err = Convert(table, nil, opts)
		assert.Error(t, err)
	})
}
