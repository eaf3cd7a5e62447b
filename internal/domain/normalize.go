package domain

import "strings"

// NormalizeRecordKey strips a leading byte-order mark and surrounding
// whitespace from a dataset field name. The source CSV carries a BOM artifact
// on its first column ("\uFEFFDestination"), which must never leak past the
// ingestion boundary.
func NormalizeRecordKey(k string) string {
	return strings.TrimSpace(strings.TrimPrefix(k, "\uFEFF"))
}

// NormalizeRecordKeys returns a copy of rec with every key normalized.
// Later duplicates win, which matches how the dataset rows are shaped
// (a raw key and its BOM-prefixed twin never coexist).
func NormalizeRecordKeys(rec map[string]string) map[string]string {
	out := make(map[string]string, len(rec))
	for k, v := range rec {
		out[NormalizeRecordKey(k)] = v
	}
	return out
}
