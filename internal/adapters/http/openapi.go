package httpadapter

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

//go:embed openapi.yaml
var openAPIDocument []byte

var loadOpenAPI = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
})

// decodeValidated checks raw against the named component schema before
// decoding it into dst.
func decodeValidated(schemaName string, raw []byte, dst any) error {
	doc, err := loadOpenAPI()
	if err != nil {
		return err
	}
	schemaRef, ok := doc.Components.Schemas[schemaName]
	if !ok || schemaRef.Value == nil {
		return fmt.Errorf("openapi schema %s is not defined", schemaName)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return domain.WrapError(domain.ErrInvalidInput, "decode request", errors.New("invalid json"))
	}
	if err := schemaRef.Value.VisitJSON(generic); err != nil {
		return domain.WrapError(domain.ErrInvalidInput, "validate request", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.WrapError(domain.ErrInvalidInput, "decode request", err)
	}
	return nil
}
