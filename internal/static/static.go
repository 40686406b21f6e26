// Package static holds the landing page served at the root of the server.
package static

import "embed"

// Files contains the default landing page.
//
//go:embed index.html
var Files embed.FS
