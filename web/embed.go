// Package web holds the browser client: the page shell embedded in the server
// binary and the compiled WebAssembly assets served from static/.
package web

import _ "embed"

// Index is the single page of the tool.
//
//go:embed index.html
var Index []byte
