package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the OpenAPI document to the swagger UI.
type swaggerDoc struct {
	raw string
}

// ReadDoc implements swag.Swagger.
func (d swaggerDoc) ReadDoc() string {
	return d.raw
}

var registerSwaggerOnce sync.Once

// registerSwaggerDoc makes doc the document behind /swagger/doc.json.
// swag panics on a second registration under one name, so only the first
// call in a process takes effect.
func registerSwaggerDoc(doc *openapi3.T) ([]byte, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{raw: string(raw)})
	})

	return raw, nil
}
