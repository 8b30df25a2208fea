// Package data carries the static game catalogs shipped with the binary.
package data

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}
