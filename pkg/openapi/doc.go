// Package openapi loads OpenAPI 3.x and Swagger 2.0 documents and converts
// their component schemas into the schema package's model.
//
// Swagger 2.0 input is upgraded to OpenAPI 3 with kin-openapi's openapi2conv
// before conversion, so definitions always end up under
// #/components/schemas/ references.
//
//	doc, err := openapi.LoadFile("petstore.yaml")
//	root, err := doc.Schema("Pet")
//	tree, err := generator.Fixture(root, generator.WithDefinitions(doc.Definitions))
package openapi
