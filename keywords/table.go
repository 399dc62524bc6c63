package keywords

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/emojikw/record"
	"github.com/npillmayer/emojikw/unified"
)

// Entry is a record of a keyword dataset.
type Entry struct {
	Char  string `json:"e"` // literal character or escaped UTF-16 code units
	Terms string `json:"k"` // space separated keywords
}

// UnmarshalJSON decodes an entry from a JSON object. Fields with values
// other than strings are treated as empty.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: keyword entry %.40s", record.ErrNotObject, data)
	}
	if raw == nil {
		return fmt.Errorf("%w: keyword entry is null", record.ErrNotObject)
	}
	*e = Entry{
		Char:  stringValue(raw["e"]),
		Terms: stringValue(raw["k"]),
	}
	return nil
}

func stringValue(m json.RawMessage) string {
	var s string
	if len(m) == 0 || json.Unmarshal(m, &s) != nil {
		return ""
	}
	return s
}

// Table maps code-point signatures to keyword strings.
type Table map[string]string

// BuildTable creates a join table from keyword entries.
//
// Entries without a valid signature are skipped, as are entries with
// blank keywords. Keywords are trimmed of surrounding white space. If more
// than one entry yields the same signature, the last one wins.
func BuildTable(entries []Entry) Table {
	table := make(Table, len(entries))
	for i, entry := range entries {
		sig := unified.Encode(entry.Char)
		if sig == "" {
			tracer().Debugf("keyword entry #%d: no signature for %q", i, entry.Char)
			continue
		}
		terms := trim(entry.Terms)
		if terms == "" {
			continue
		}
		if prev, ok := table[sig]; ok {
			tracer().Debugf("keyword entry #%d: replacing keywords for %s (%q)", i, sig, prev)
		}
		table[sig] = terms
	}
	tracer().Infof("join table has %d signatures from %d entries", len(table), len(entries))
	return table
}

// Lookup returns the keyword string for signature sig.
func (t Table) Lookup(sig string) (string, bool) {
	terms, ok := t[sig]
	return terms, ok
}

// trim removes white space as JavaScript understands it: Unicode space
// separators, line terminators, and the byte order mark. NEL is not included.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\uFEFF' || (r != 0x85 && unicode.IsSpace(r))
	})
}
