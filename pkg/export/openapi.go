// Package export renders the registry's document schemas as an OpenAPI
// document so external frontends can render the same forms the wizard
// does. The export is one-way; this module never parses OpenAPI back.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/qanoonsoft/docwizard/pkg/schema"
)

// OpenAPI builds an OpenAPI 3 document with one component schema per
// registered document type. Field kinds map to OpenAPI types and formats;
// select options become enums; required fields populate the schema's
// required list.
func OpenAPI(registry *schema.Registry, version string) (*openapi3.T, error) {
	if registry == nil {
		return nil, fmt.Errorf("export: registry is nil")
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "docwizard document schemas",
			Version: version,
		},
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	for _, docType := range registry.Types() {
		ds, ok := registry.Schema(docType)
		if !ok {
			continue
		}
		doc.Components.Schemas[string(docType)] = openapi3.NewSchemaRef("", documentSchema(ds))
	}

	return doc, nil
}

// JSON renders the export as indented JSON.
func JSON(registry *schema.Registry, version string) ([]byte, error) {
	doc, err := OpenAPI(registry, version)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal document: %w", err)
	}
	return out, nil
}

func documentSchema(ds schema.DocumentSchema) *openapi3.Schema {
	object := &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeObject},
		Title:       ds.Label,
		Properties:  make(openapi3.Schemas, len(ds.Fields)),
		Description: fmt.Sprintf("Form fields for a %s", ds.Label),
	}

	for _, field := range ds.Fields {
		object.Properties[field.Name] = openapi3.NewSchemaRef("", fieldSchema(field))
		if field.Required {
			object.Required = append(object.Required, field.Name)
		}
	}

	return object
}

func fieldSchema(field schema.FieldDefinition) *openapi3.Schema {
	out := &openapi3.Schema{
		Title: field.Label,
	}

	switch field.Kind {
	case schema.KindNumber:
		out.Type = &openapi3.Types{openapi3.TypeNumber}
		out.Min = field.Min
		out.Max = field.Max
	case schema.KindDate:
		out.Type = &openapi3.Types{openapi3.TypeString}
		out.Format = "date"
	case schema.KindTime:
		out.Type = &openapi3.Types{openapi3.TypeString}
		out.Format = "time"
	case schema.KindEmail:
		out.Type = &openapi3.Types{openapi3.TypeString}
		out.Format = "email"
	case schema.KindSelect:
		out.Type = &openapi3.Types{openapi3.TypeString}
		for _, opt := range field.Options {
			out.Enum = append(out.Enum, opt)
		}
	default:
		out.Type = &openapi3.Types{openapi3.TypeString}
	}

	if field.Placeholder != "" {
		out.Description = field.Placeholder
	}

	return out
}
