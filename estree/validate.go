package estree

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaSource))
		if schemaErr != nil {
			schemaErr = errors.Wrap(schemaErr, "loading ESTree schema")
		}
	})
	return schema, schemaErr
}

// Validate checks that doc is an ESTree Program for ES5 source. The error
// lists every violation found.
func Validate(doc []byte) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.Wrap(err, "validating ESTree document")
	}
	if result.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Errorf("invalid ESTree document: %s", strings.Join(msgs, "; "))
}
