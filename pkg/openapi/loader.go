package openapi

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"sigs.k8s.io/yaml"

	"github.com/getmockd/fixturegen/pkg/schema"
)

// Document is the part of an API description the generator needs.
type Document struct {
	Title       string
	Version     string
	Definitions schema.Definitions
}

// Schema returns a root schema referencing the named component.
func (d *Document) Schema(name string) (*schema.Schema, error) {
	if _, ok := d.Definitions[name]; !ok {
		return nil, fmt.Errorf("schema %q not found in document", name)
	}
	return &schema.Schema{Ref: schema.ComponentRef(name)}, nil
}

// Names returns the component names in sorted order.
func (d *Document) Names() []string {
	return d.Definitions.Names()
}

// Origins let the converter keep properties in declaration order.
func init() {
	openapi3.IncludeOrigin = true
}

func newLoader() *openapi3.Loader {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	return loader
}

// LoadFile loads a document from a file path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	doc, err := load(data, &url.URL{Path: filepath.ToSlash(abs)})
	if err != nil {
		return nil, fmt.Errorf("failed to load spec from file %s: %w", path, err)
	}
	return doc, nil
}

// LoadURL loads a document over HTTP(S).
func LoadURL(specURL string) (*Document, error) {
	u, err := url.Parse(specURL)
	if err != nil {
		return nil, fmt.Errorf("invalid spec URL: %w", err)
	}
	loader := newLoader()
	data, err := openapi3.DefaultReadFromURI(loader, u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spec from URL %s: %w", specURL, err)
	}
	doc, err := load(data, u)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec from URL %s: %w", specURL, err)
	}
	return doc, nil
}

// LoadData loads a document from YAML or JSON bytes. External references
// are resolved against the working directory.
func LoadData(data []byte) (*Document, error) {
	return load(data, nil)
}

func load(data []byte, location *url.URL) (*Document, error) {
	v2, err := swagger2(data)
	if err != nil {
		return nil, err
	}
	if v2 != nil {
		v3, err := openapi2conv.ToV3(v2)
		if err != nil {
			return nil, fmt.Errorf("convert swagger 2.0 document: %w", err)
		}
		return FromV3(v3), nil
	}

	loader := newLoader()
	var doc *openapi3.T
	if location != nil {
		doc, err = loader.LoadFromDataWithPath(data, location)
	} else {
		doc, err = loader.LoadFromData(data)
	}
	if err != nil {
		return nil, err
	}
	return FromV3(doc), nil
}

// swagger2 decodes data as a Swagger 2.0 document, or returns nil when the
// data declares another version.
func swagger2(data []byte) (*openapi2.T, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	var header struct {
		Swagger string `json:"swagger"`
	}
	if err := json.Unmarshal(jsonData, &header); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if header.Swagger == "" {
		return nil, nil
	}

	var doc openapi2.T
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse swagger %s document: %w", header.Swagger, err)
	}
	return &doc, nil
}

// FromV3 converts the component schemas of a loaded OpenAPI 3 document.
func FromV3(doc *openapi3.T) *Document {
	out := &Document{Definitions: schema.Definitions{}}
	if doc == nil {
		return out
	}
	if doc.Info != nil {
		out.Title = doc.Info.Title
		out.Version = doc.Info.Version
	}
	if doc.Components == nil {
		return out
	}

	c := NewConverter()
	for name, ref := range doc.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		out.Definitions[name] = c.Convert(ref.Value)
	}
	return out
}
