package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readSource reads a script from path, or from stdin when path is "-".
func readSource(path string, stdin io.Reader) (string, error) {
	var (
		buf []byte
		err error
	)
	if path == "-" {
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return decodeSource(buf)
}

// decodeSource converts raw file contents to UTF-8. A UTF-16 byte order
// mark selects UTF-16; a UTF-8 mark is dropped.
func decodeSource(buf []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, buf)
	if err != nil {
		return "", errors.Wrap(err, "decoding source")
	}
	return string(out), nil
}
