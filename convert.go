package emojikw

import (
	"context"
	"time"

	"github.com/npillmayer/emojikw/internal/source"
	"github.com/npillmayer/emojikw/keywords"
	"github.com/npillmayer/emojikw/names"
	"github.com/npillmayer/emojikw/record"
	"golang.org/x/text/language"
)

// Options configure a conversion run.
type Options struct {
	EmojiPath  string       // emoji dataset, a JSON array of objects
	WordsPath  string       // keyword dataset, a JSON array of {e,k} objects
	OutputPath string       // result file, will be overwritten
	Language   language.Tag // language for case mappings of names
}

// DefaultOptions returns options for files in the current directory.
func DefaultOptions() Options {
	return Options{
		EmojiPath:  "emoji.json",
		WordsPath:  "words.json",
		OutputPath: "emojis_with_keywords.json",
		Language:   language.Und,
	}
}

// Stats reports the result of a run.
type Stats struct {
	Total        int // emoji records read
	WithKeywords int // emoji records with keywords attached
	Signatures   int // distinct characters with keywords
}

// Merge joins keyword entries into emoji records, normalizes names and sorts
// the result by sort order. records are left unchanged.
func Merge(records []*record.Record, entries []keywords.Entry, norm *names.Normalizer) ([]*record.Record, Stats) {
	table := keywords.BuildTable(entries)
	merged, st := keywords.Join(table, records, norm)
	keywords.SortByOrder(merged)
	return merged, Stats{
		Total:        st.Total,
		WithKeywords: st.WithKeywords,
		Signatures:   len(table),
	}
}

// Convert reads both datasets, merges them and writes the result to
// opts.OutputPath. Any read, decode or write failure aborts the run; no
// partial output is written.
func Convert(ctx context.Context, opts Options) (Stats, error) {
	defer timeTrack(time.Now(), "conversion")
	in, err := source.LoadInputs(ctx, opts.EmojiPath, opts.WordsPath)
	if err != nil {
		tracer().Errorf("conversion failed: %v", err)
		return Stats{}, err
	}
	merged, stats := Merge(in.Emoji, in.Keywords, names.NewNormalizer(opts.Language))
	if err = source.WriteOutput(opts.OutputPath, merged); err != nil {
		tracer().Errorf("conversion failed: %v", err)
		return Stats{}, err
	}
	tracer().Infof("%d records written to %s, %d with keywords", stats.Total, opts.OutputPath, stats.WithKeywords)
	return stats, nil
}

func timeTrack(start time.Time, name string) {
	tracer().Debugf("timing: %s took %s", name, time.Since(start))
}
