package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/schedule"
)

func TestDetect(t *testing.T) {
	format, err := Detect("schedule.docx")
	require.NoError(t, err)
	assert.Equal(t, FormatDocx, format)

	format, err = Detect("/tmp/uploads/week.PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, format)

	_, err = Detect("schedule.xlsx")
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".pdf", Extension(FormatPDF))
	assert.Equal(t, ".docx", Extension(FormatDocx))
}

const docxFixture = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Week of Jan 5</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>NAME</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>MON</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>TUE</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Dana</w:t></w:r></w:p></w:tc>
        <w:tc>
          <w:p><w:r><w:t>8:45am-</w:t></w:r></w:p>
          <w:p><w:r><w:t>12:45pm</w:t></w:r></w:p>
        </w:tc>
        <w:tc><w:p><w:r><w:t></w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func TestDecodeDocxTables(t *testing.T) {
	tables, err := decodeDocxTables(strings.NewReader(docxFixture))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	table := tables[0]
	require.Len(t, table, 2)
	assert.Equal(t, schedule.RawRow{"NAME", "MON", "TUE"}, table[0])
	// paragraphs inside one cell join with a space
	assert.Equal(t, schedule.RawRow{"Dana", "8:45am- 12:45pm", ""}, table[1])
}

func TestDecodeDocxTablesNestedTable(t *testing.T) {
	nested := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:tbl><w:tr><w:tc><w:p><w:r><w:t>outer</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>inner</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
</w:tc></w:tr></w:tbl></w:body></w:document>`

	tables, err := decodeDocxTables(strings.NewReader(nested))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 1)
	// inner table text merges into the outer cell
	assert.Equal(t, "outer inner", tables[0][0][0])
}

func TestDocxTablesFromArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.docx")
	writeDocx(t, path, docxFixture)

	tables, err := Tables(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, schedule.RawRow{"NAME", "MON", "TUE"}, tables[0][0])
}

func TestDocxTablesMissingDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = Tables(path)
	assert.ErrorContains(t, err, "word/document.xml")
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestTextFromStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(NAME) Tj\n72 0 Td\n(MON) Tj\nT*\n(Dana) Tj\n72 0 Td\n(7am-3pm) Tj\nET\n")

	text := textFromStream(stream)
	assert.Equal(t, "NAME\tMON\nDana\t7am-3pm", text)
}

func TestDecodePDFString(t *testing.T) {
	assert.Equal(t, "a(b)c", decodePDFString([]byte(`a\(b\)c`)))
	assert.Equal(t, "back\\slash", decodePDFString([]byte(`back\\slash`)))
	assert.Equal(t, "tab\there", decodePDFString([]byte(`tab\there`)))
	assert.Equal(t, "plain", decodePDFString([]byte("plain")))
}

func TestTableFromText(t *testing.T) {
	text := "NAME\tMON\tTUE\nDana  7am-3pm   \n\nGus\t\t3pm-11pm"

	table := tableFromText(text)
	require.Len(t, table, 3)
	assert.Equal(t, schedule.RawRow{"NAME", "MON", "TUE"}, table[0])
	assert.Equal(t, schedule.RawRow{"Dana", "7am-3pm"}, table[1])
	assert.Equal(t, schedule.RawRow{"Gus", "", "3pm-11pm"}, table[2])
}
