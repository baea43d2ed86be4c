// Package payload serializes element trees into message bodies.
//
// Quoted leaves are written as strings and unquoted leaves verbatim, so a
// tree straight from the generator yields a template such as
//
//	{"id": "randomUUID()", "age": randomNumberGenerator(0, 0, 120, false, false)}
//
// while a tree passed through functions.Resolver yields plain JSON. Empty
// values are written as null.
package payload
