// Package registry provides a generic, thread-safe registry for
// storing items by name. writ uses it to hold the generated command
// table that the router walks, with registration happening in init()
// functions of generated code.
package registry
