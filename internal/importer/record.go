package importer

import "strings"

// RawRecord is one flat row of the export: an ordered column-name → raw text
// mapping. The column index is shared across every record of a file.
type RawRecord struct {
	columns map[string]int
	values  []string
}

func newRawRecord(columns map[string]int, values []string) RawRecord {
	return RawRecord{columns: columns, values: values}
}

// Get returns the trimmed value for the named column. A column missing from
// the file and an empty value collapse to the same empty string.
func (r RawRecord) Get(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[idx])
}
