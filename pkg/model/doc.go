// Package model provides the intermediate element tree a fixture is
// synthesized into, and the Builder generators use to grow it.
//
// The tree is a small closed set of variants:
//   - Value holds exactly one payload: a Leaf or a nested Element
//   - Object is an ordered mapping of unique keys to children
//   - List is an ordered sequence of children
//
// Leaves carry generator-function expressions such as
// randomString(10, MIXED, true, 1) together with a flag telling writers
// whether the expression sits in a string-valued (quoted) position.
//
// Illegal pushes, such as a bare leaf into an Object, are reported as errors
// rather than silently dropped.
package model
