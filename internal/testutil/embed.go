package testutil

import (
	"embed"
	"io/fs"
	"path"

	"github.com/pkg/errors"
)

// TestdataFS holds the sample JSON documents and their golden renderings.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, errors.Wrapf(err, "read test data file %q", name)
	}
	return data, nil
}

// Documents returns the names of the embedded .json documents in lexical
// order.
func Documents() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.json")
	if err != nil {
		return nil, errors.Wrap(err, "list test data")
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = path.Base(m)
	}
	return names, nil
}

// GoldenName returns the name of the golden file paired with a document.
func GoldenName(document string) string {
	return document[:len(document)-len(path.Ext(document))] + ".golden"
}
