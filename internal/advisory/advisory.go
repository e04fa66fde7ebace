// Package advisory holds the static disposal guidance keyed by class label.
package advisory

import (
	"fmt"
	"sort"
	"strings"

	"wasteclassd/pkg/types"
)

// FallbackText is shown for labels without a record.
const FallbackText = "informasi detail untuk kategori ini belum tersedia."

// Record is one advisory entry.
type Record = types.Advisory

// Table maps a label to its advisory record. A Table is read-only once
// handed to the classifier.
type Table map[string]Record

// Default returns a copy of the built-in table.
func Default() Table {
	out := make(Table, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}
	return out
}

// Lookup returns the stored record for label.
func (t Table) Lookup(label string) (Record, bool) {
	r, ok := t[label]
	return r, ok
}

// Labels returns the table keys in sorted order.
func (t Table) Labels() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new table holding t with every entry of over laid on top.
func (t Table) Merge(over Table) Table {
	out := make(Table, len(t)+len(over))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Markdown renders the advisory block for label. Labels without a record
// get a heading and FallbackText.
func (t Table) Markdown(label string) string {
	r, ok := t.Lookup(label)
	if !ok {
		return fmt.Sprintf("### %s\n%s", label, FallbackText)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n### Hasil Deteksi: **%s**\n\n", label)
	fmt.Fprintf(&b, "* **📄 Deskripsi:** %s\n", r.Description)
	fmt.Fprintf(&b, "* **🗑️ Buang Pada Tong Sampah:** %s\n", r.BinColor)
	fmt.Fprintf(&b, "* **♻️ Dapat Didaur Ulang:** %s\n", r.Recyclable)
	b.WriteString("\n---\n#### ⚠️ Dampak Jika Tidak Diolah:\n")
	b.WriteString(r.Impact)
	b.WriteString("\n")
	return b.String()
}
