// Package inspect reads a built font binary and reports its table
// directory, name records, and glyph count. It is a debugging aid for
// checking what the external assembler actually produced.
package inspect

import (
	"encoding/binary"
	"os"
	"sort"

	"golang.org/x/image/font/sfnt"

	"github.com/chromana/chromana/errors"
)

// Table is one entry of the font's table directory.
type Table struct {
	Tag    string
	Offset uint32
	Length uint32
}

// NameRecord is one resolved entry of the font's name table.
type NameRecord struct {
	ID    sfnt.NameID
	Label string
	Value string
}

// Report describes a parsed font binary.
type Report struct {
	Path       string
	Size       int64
	NumGlyphs  int
	UnitsPerEm int
	Tables     []Table
	Names      []NameRecord
}

// name IDs worth surfacing, in report order.
var reportedNames = []struct {
	id    sfnt.NameID
	label string
}{
	{sfnt.NameIDFamily, "Family"},
	{sfnt.NameIDSubfamily, "Subfamily"},
	{sfnt.NameIDUniqueIdentifier, "Unique identifier"},
	{sfnt.NameIDFull, "Full name"},
	{sfnt.NameIDVersion, "Version"},
	{sfnt.NameIDPostScript, "PostScript name"},
	{sfnt.NameIDManufacturer, "Manufacturer"},
	{sfnt.NameIDDesigner, "Designer"},
}

// Inspect parses the font at path and builds its report.
func Inspect(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read font %s", path)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "font %s does not parse", path)
	}

	report := &Report{
		Path:      path,
		Size:      int64(len(data)),
		NumGlyphs: f.NumGlyphs(),
		Tables:    tableDirectory(data),
	}
	if upem := f.UnitsPerEm(); upem > 0 {
		report.UnitsPerEm = int(upem)
	}

	var buf sfnt.Buffer
	for _, n := range reportedNames {
		value, err := f.Name(&buf, n.id)
		if err != nil {
			continue
		}
		report.Names = append(report.Names, NameRecord{ID: n.id, Label: n.label, Value: value})
	}

	return report, nil
}

// tableDirectory decodes the sfnt header's table records. The parser
// in x/image exposes table contents but not the directory itself, so
// the twelve-byte header and sixteen-byte records are read directly.
func tableDirectory(data []byte) []Table {
	if len(data) < 12 {
		return nil
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))

	tables := make([]Table, 0, numTables)
	for i := 0; i < numTables; i++ {
		rec := 12 + 16*i
		if rec+16 > len(data) {
			break
		}
		tables = append(tables, Table{
			Tag:    string(data[rec : rec+4]),
			Offset: binary.BigEndian.Uint32(data[rec+8 : rec+12]),
			Length: binary.BigEndian.Uint32(data[rec+12 : rec+16]),
		})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Tag < tables[j].Tag })
	return tables
}

// HasTable reports whether the font carries the tagged table.
func (r *Report) HasTable(tag string) bool {
	for _, t := range r.Tables {
		if t.Tag == tag {
			return true
		}
	}
	return false
}

// Name returns the reported value for a name ID, or "".
func (r *Report) Name(id sfnt.NameID) string {
	for _, n := range r.Names {
		if n.ID == id {
			return n.Value
		}
	}
	return ""
}
