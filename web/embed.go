// Package web holds the embedded HTML views and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views
var views embed.FS

//go:embed static
var static embed.FS

// Views returns the template tree rooted at views/.
func Views() fs.FS {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
