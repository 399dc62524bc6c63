// Package testdata locates fixture files for tests.
//
// Fixtures are small excerpts of the emoji-data dataset and of a keyword
// list, plus the expected result of merging them. A complete copy of the
// emoji dataset may be fetched with
//
//    go run download.go
//
// which stores it as fixtures/full/emoji.json.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Reader returns a reader for the given fixture file.
func Reader(file string) (io.Reader, error) {
	data, err := os.ReadFile(Path(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// Path returns the path for the given fixture file.
func Path(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "fixtures", file)
}
