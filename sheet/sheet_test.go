package sheet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lifei6671/i18ntree"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffkey , loc:en,loc:fr\n" +
		"greeting,Hello,Bonjour\n" +
		"\"a,b\",\"multi\nline\"\n"
	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"key", "loc:en", "loc:fr"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, i18ntree.Record{"key": "greeting", "loc:en": "Hello", "loc:fr": "Bonjour"}, table.Rows[0])
	assert.Equal(t, i18ntree.Record{"key": "a,b", "loc:en": "multi\nline"}, table.Rows[1])
}

func TestFromRows(t *testing.T) {
	_, err := FromRows(nil)
	assert.ErrorIs(t, err, ErrNoHeader)

	// "e" followed by a combining acute accent normalizes to "é".
	table, err := FromRows([][]string{{"key", "loc:cafe\u0301", ""}, {"k", "v", "dropped"}})
	require.NoError(t, err)
	assert.Equal(t, "loc:caf\u00e9", table.Headers[1])
	assert.Equal(t, i18ntree.Record{"key": "k", "loc:caf\u00e9": "v"}, table.Rows[0])
}

func TestRead_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "ui"))
	_, err := f.NewSheet("other")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("ui", "A1", &[]any{"key", "loc:en", "loc:de"}))
	require.NoError(t, f.SetSheetRow("ui", "A2", &[]any{"menu.open", "Open", "Öffnen"}))
	require.NoError(t, f.SetSheetRow("ui", "A3", &[]any{"menu.items[0]", "First"}))
	require.NoError(t, f.SetSheetRow("other", "A1", &[]any{"key", "loc:en"}))
	require.NoError(t, f.SetSheetRow("other", "A2", &[]any{"title", "Other"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	sheets, err := Sheets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ui", "other"}, sheets)

	table, err := Read(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"key", "loc:en", "loc:de"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Öffnen", table.Rows[0]["loc:de"])
	_, ok := table.Rows[1]["loc:de"]
	assert.False(t, ok)

	res, err := i18ntree.Convert(table, nil, i18ntree.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"menu":{"open":"Open","items":["First"]}}`, res.Outputs[0].Tree.String())

	other, err := Read(path, "other")
	require.NoError(t, err)
	assert.Equal(t, "Other", other.Rows[0]["loc:en"])

	_, err = Read(path, "missing")
	assert.Error(t, err)
}
