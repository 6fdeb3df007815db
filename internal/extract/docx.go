package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/schedule"
)

// docxTables parses a .docx file by reading word/document.xml from the ZIP
// archive and walking its w:tbl/w:tr/w:tc structure.
func docxTables(path string) ([]schedule.RawTable, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return decodeDocxTables(rc)
}

// decodeDocxTables walks the document token stream. Only top-level tables are
// collected; text inside a nested table merges into its outer cell, which is
// good enough for paper schedules.
func decodeDocxTables(r io.Reader) ([]schedule.RawTable, error) {
	decoder := xml.NewDecoder(r)

	var tables []schedule.RawTable
	var curTable schedule.RawTable
	var curRow schedule.RawRow
	var cell strings.Builder
	tblDepth := 0
	inCell := false
	inText := false
	pendingBreak := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
				if tblDepth == 1 {
					curTable = schedule.RawTable{}
				}
			case "tr":
				if tblDepth == 1 {
					curRow = schedule.RawRow{}
				}
			case "tc":
				if tblDepth == 1 {
					inCell = true
					cell.Reset()
					pendingBreak = false
				}
			case "p", "br":
				// paragraph boundary within a cell separates wrapped lines
				if inCell && cell.Len() > 0 {
					pendingBreak = true
				}
			case "t":
				inText = true
			}

		case xml.CharData:
			if inCell && inText {
				if pendingBreak {
					cell.WriteByte(' ')
					pendingBreak = false
				}
				cell.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				if tblDepth == 1 && inCell {
					curRow = append(curRow, strings.TrimSpace(cell.String()))
					inCell = false
				}
			case "tr":
				if tblDepth == 1 && curRow != nil {
					curTable = append(curTable, curRow)
					curRow = nil
				}
			case "tbl":
				if tblDepth == 1 && len(curTable) > 0 {
					tables = append(tables, curTable)
				}
				tblDepth--
			}
		}
	}

	return tables, nil
}
