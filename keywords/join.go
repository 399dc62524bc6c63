package keywords

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/emojikw/names"
	"github.com/npillmayer/emojikw/record"
)

// Stats reports the result of a join.
type Stats struct {
	Total        int // number of emoji records
	WithKeywords int // records which got keywords attached
}

// Join creates a new list of records from records, in the same order.
//
// Every record gets its name normalized with norm; a missing or non-string
// name becomes "". If the unified field of a record is found in table, the
// record gets a field "keywords" holding the keyword string split at single
// spaces. Other fields are copied as they are. records are not modified.
//
// If norm is nil, names.Default() is used.
func Join(table Table, records []*record.Record, norm *names.Normalizer) ([]*record.Record, Stats) {
	if norm == nil {
		norm = names.Default()
	}
	stats := Stats{Total: len(records)}
	joined := make([]*record.Record, len(records))
	for i, rec := range records {
		r := rec.Clone()
		name, _ := r.String(record.Name)
		r.Set(record.Name, norm.Capitalize(name))
		if sig, ok := r.String(record.Unified); ok {
			if terms, found := table.Lookup(sig); found {
				r.Set(record.Keywords, strings.Split(terms, " "))
				stats.WithKeywords++
			}
		}
		joined[i] = r
	}
	tracer().Infof("%d of %d records got keywords", stats.WithKeywords, stats.Total)
	return joined, stats
}

// SortByOrder sorts records by ascending numeric field "sort_order".
// The sort is stable.
//
// Records without a sort order go last. A sort order of null or false counts
// as 0, true counts as 1, a string counts as the number it spells out (0 if
// blank). Any other value counts as missing.
func SortByOrder(records []*record.Record) {
	type keyed struct {
		rec   *record.Record
		order float64
	}
	ks := make([]keyed, len(records))
	for i, r := range records {
		ks[i] = keyed{rec: r, order: sortKey(r)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].order < ks[j].order
	})
	for i := range ks {
		records[i] = ks[i].rec
	}
}

func sortKey(r *record.Record) float64 {
	v, found := r.Get(record.SortOrder)
	if !found {
		return math.Inf(1)
	}
	var f float64
	var err error
	switch x := v.(type) {
	case nil:
		return 0
	case json.Number:
		f, err = x.Float64()
	case float64:
		f = x
	case int:
		f = float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		if x = strings.TrimSpace(x); x == "" {
			return 0
		}
		f, err = strconv.ParseFloat(x, 64)
	default:
		return math.Inf(1)
	}
	if err != nil || math.IsNaN(f) {
		tracer().Debugf("sort order %v is not a number", v)
		return math.Inf(1)
	}
	return f
}
