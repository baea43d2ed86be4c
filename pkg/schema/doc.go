// Package schema defines the read-only schema object model consumed by the
// fixture generator.
//
// A Schema is a node of an API description restricted to the keywords the
// generator understands: type, format, pattern, enum, numeric and length
// constraints, object properties, array items, the composite keywords allOf,
// anyOf and oneOf, and $ref pointers into a shared Definitions table.
//
// Schemas are usually produced by the OpenAPI loader (package openapi), but
// they can also be decoded directly from a YAML or JSON schema bundle:
//
//	definitions:
//	  Pet:
//	    type: object
//	    required: [name]
//	    properties:
//	      name: {type: string, maxLength: 20}
//	      tags: {type: array, items: {type: string}}
//	schema:
//	  $ref: '#/definitions/Pet'
//
// Property order is preserved when decoding bundles, so generated fixtures
// list fields in document order.
package schema
