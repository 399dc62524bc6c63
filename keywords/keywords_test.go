package keywords

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/emojikw/names"
	"github.com/npillmayer/emojikw/record"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func records(t *testing.T, s string) []*record.Record {
	t.Helper()
	var recs []*record.Record
	if err := json.Unmarshal([]byte(s), &recs); err != nil {
		t.Fatalf("cannot decode records: %v", err)
	}
	return recs
}

func marshal(t *testing.T, recs []*record.Record) string {
	t.Helper()
	b, err := record.MarshalList(recs, "  ")
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestEntryDecoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	var entries []Entry
	err := json.Unmarshal([]byte(`[{"e":"A","k":"a b"},{"e":42,"k":["x"]},{"k":"c"},{}]`), &entries)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Entry{{"A", "a b"}, {"", ""}, {"", "c"}, {"", ""}}
	for i, e := range entries {
		if e != expected[i] {
			t.Errorf("#%d: expected entry %v, is %v", i, expected[i], e)
		}
	}
	for _, s := range []string{`["x"]`, `[null]`, `[[1]]`} {
		err = json.Unmarshal([]byte(s), &entries)
		if !errors.Is(err, record.ErrNotObject) {
			t.Errorf("expected %s to be rejected, error is %v", s, err)
		}
	}
}

func TestBuildTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	table := BuildTable([]Entry{
		{Char: "\U0001F600", Terms: "  face grin  "},
		{Char: `\uD83D\uDE03`, Terms: "smile"},
		{Char: "", Terms: "no character"},
		{Char: "A", Terms: " \t\uFEFF\u00A0"},
		{Char: `\uZZZZ`, Terms: "malformed"},
		{Char: "\U0001F603", Terms: "happy joy smile"},
	})
	if len(table) != 2 {
		t.Errorf("expected join table with 2 entries, has %d: %v", len(table), table)
	}
	if terms, ok := table.Lookup("1F600"); !ok || terms != "face grin" {
		t.Errorf("expected trimmed keywords for 1F600, are %q", terms)
	}
	if terms := table["1F603"]; terms != "happy joy smile" {
		t.Errorf("expected last entry to win for 1F603, is %q", terms)
	}
	if _, ok := table.Lookup("0041"); ok {
		t.Errorf("expected blank keywords to be skipped")
	}
}

func TestJoin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	table := Table{"1F603": "happy joy smile", "0023-FE0F-20E3": "a  b"}
	recs := records(t, `[
		{"unified":"1F603","name":"SMILING FACE WITH OPEN MOUTH","sort_order":2},
		{"name":"GRINNING FACE","unified":"1F600","x":{"b":1,"a":2}},
		{"unified":"0023-FE0F-20E3"},
		{"unified":1,"name":7}
	]`)
	before := marshal(t, recs)
	joined, stats := Join(table, recs, nil)
	if after := marshal(t, recs); after != before {
		t.Errorf("expected input records to be unchanged")
	}
	if stats.Total != 4 || stats.WithKeywords != 2 {
		t.Errorf("expected stats {4 2}, are %v", stats)
	}
	expected := `[
  {
    "unified": "1F603",
    "name": "Smiling Face With Open Mouth",
    "sort_order": 2,
    "keywords": [
      "happy",
      "joy",
      "smile"
    ]
  },
  {
    "name": "Grinning Face",
    "unified": "1F600",
    "x": {
      "b": 1,
      "a": 2
    }
  },
  {
    "unified": "0023-FE0F-20E3",
    "name": "",
    "keywords": [
      "a",
      "",
      "b"
    ]
  },
  {
    "unified": 1,
    "name": ""
  }
]`
	if out := marshal(t, joined); out != expected {
		t.Errorf("expected joined records\n%s\nare\n%s", expected, out)
	}
}

func TestJoinIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	entries := []Entry{{Char: "\U0001F600", Terms: "grin"}}
	input := `[{"unified":"1F600","name":"GRINNING FACE"},{"unified":"1F603"}]`
	run := func() string {
		recs, _ := Join(BuildTable(entries), records(t, input), names.Default())
		SortByOrder(recs)
		return marshal(t, recs)
	}
	if first, second := run(), run(); first != second {
		t.Errorf("expected two runs to produce identical output:\n%s\n%s", first, second)
	}
}

func TestSortByOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	recs := records(t, `[
		{"id":"a","sort_order":3},
		{"id":"b"},
		{"id":"c","sort_order":1},
		{"id":"d","sort_order":"2"},
		{"id":"e","sort_order":null},
		{"id":"f","sort_order":"x"},
		{"id":"g","sort_order":1},
		{"id":"h","sort_order":-1.5}
	]`)
	SortByOrder(recs)
	var ids []string
	for _, r := range recs {
		id, _ := r.String("id")
		ids = append(ids, id)
	}
	if order := strings.Join(ids, ""); order != "hecgdabf" {
		t.Errorf("expected order hecgdabf, is %s", order)
	}
	SortByOrder(nil)
}

func TestSortKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	r := record.New()
	if k := sortKey(r); !math.IsInf(k, 1) {
		t.Errorf("expected missing sort order to be +Inf, is %v", k)
	}
	for _, v := range []interface{}{[]interface{}{}, "NaN", record.New()} {
		r.Set(record.SortOrder, v)
		if k := sortKey(r); !math.IsInf(k, 1) {
			t.Errorf("expected sort order %v to count as missing, is %v", v, k)
		}
	}
	r.Set(record.SortOrder, " 12 ")
	if k := sortKey(r); k != 12 {
		t.Errorf("expected sort order ' 12 ' to be 12, is %v", k)
	}
	coerced := []interface{}{true, false, "", "  "}
	keys := []float64{1, 0, 0, 0}
	for i, v := range coerced {
		r.Set(record.SortOrder, v)
		if k := sortKey(r); k != keys[i] {
			t.Errorf("#%d: expected sort order %#v to be %v, is %v", i, v, keys[i], k)
		}
	}
}

func TestSortByBooleanOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojikw.keywords")
	defer teardown()
	//
	recs := records(t, `[
		{"id":"a","sort_order":2},
		{"id":"b","sort_order":true},
		{"id":"c"},
		{"id":"d","sort_order":false}
	]`)
	SortByOrder(recs)
	var ids []string
	for _, r := range recs {
		id, _ := r.String("id")
		ids = append(ids, id)
	}
	if order := strings.Join(ids, ""); order != "dbac" {
		t.Errorf("expected order dbac, is %s", order)
	}
}
