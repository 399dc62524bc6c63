// Package source reads the input datasets and writes the merged result.
//
// Input files are JSON arrays. They may be encoded in UTF-8, with or
// without byte order mark, or in UTF-16 with byte order mark.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/emojikw/keywords"
	"github.com/npillmayer/emojikw/record"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// tracer traces to emojikw.source .
func tracer() tracing.Trace {
	return tracing.Select("emojikw.source")
}

// ErrNotArray is returned if an input document is not a JSON array.
var ErrNotArray = errors.New("JSON document is not an array")

// Inputs are the decoded input datasets.
type Inputs struct {
	Emoji    []*record.Record
	Keywords []keywords.Entry
}

// LoadInputs reads the emoji dataset and the keyword dataset concurrently.
// If either one fails, the other is cancelled and the first error is returned.
func LoadInputs(ctx context.Context, emojiPath, wordsPath string) (*Inputs, error) {
	in := &Inputs{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Emoji, err = ReadEmoji(ctx, emojiPath)
		return
	})
	g.Go(func() (err error) {
		in.Keywords, err = ReadKeywords(ctx, wordsPath)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// ReadEmoji reads a JSON array of emoji records from file path.
func ReadEmoji(ctx context.Context, path string) ([]*record.Record, error) {
	var recs []*record.Record
	err := readArray(ctx, path, func(dec *json.Decoder) error {
		r, err := record.Decode(dec)
		if err != nil {
			return err
		}
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Infof("read %d emoji records from %s", len(recs), path)
	return recs, nil
}

// ReadKeywords reads a JSON array of keyword entries from file path.
func ReadKeywords(ctx context.Context, path string) ([]keywords.Entry, error) {
	var entries []keywords.Entry
	err := readArray(ctx, path, func(dec *json.Decoder) error {
		var e keywords.Entry
		if err := dec.Decode(&e); err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Infof("read %d keyword entries from %s", len(entries), path)
	return entries, nil
}

func readArray(ctx context.Context, path string, elem func(*json.Decoder) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	if err = DecodeArray(&ctxReader{ctx: ctx, r: Decoded(f)}, elem); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Decoded returns a reader which decodes r to UTF-8. r is expected to be
// UTF-8, unless it starts with a byte order mark for UTF-16. A byte order
// mark is removed.
func Decoded(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// DecodeArray reads a JSON array from r and calls elem for every element.
// elem has to consume exactly one JSON value from the decoder.
// Numbers are decoded as json.Number.
func DecodeArray(r io.Reader, elem func(*json.Decoder) error) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return ErrNotArray
	}
	for i := 0; dec.More(); i++ {
		if err := elem(dec); err != nil {
			return fmt.Errorf("element #%d: %w", i, err)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return fmt.Errorf("unexpected %v after end of array", tok)
	}
	return nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// WriteOutput writes records as a pretty-printed JSON array to file path.
// The file is written completely or not at all: records are written to a
// temporary file in the same directory, which then replaces path.
func WriteOutput(path string, records []*record.Record) error {
	data, err := record.MarshalList(records, "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return cleanup(err)
	}
	if err = tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tracer().Infof("wrote %d records to %s", len(records), path)
	return nil
}
