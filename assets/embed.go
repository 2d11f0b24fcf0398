// assets/embed.go
//
// Compiled-in data for the directory: the game catalog, the collection
// configs, SQL migrations for the local favorites database, and the page
// templates. Everything here is read-only at runtime.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed catalog.yaml collections.yaml migrations/*.sql templates/*.html
var FS embed.FS

// CatalogYAML returns the raw embedded catalog document.
func CatalogYAML() ([]byte, error) {
	return FS.ReadFile("catalog.yaml")
}

// CollectionsYAML returns the raw embedded collection configs.
func CollectionsYAML() ([]byte, error) {
	return FS.ReadFile("collections.yaml")
}

// Migrations returns the migrations directory as its own FS root.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "migrations")
	if err != nil {
		// fs.Sub only fails on an invalid path, and the path is a constant.
		panic(err)
	}
	return sub
}

// Templates returns the templates directory as its own FS root.
func Templates() fs.FS {
	sub, err := fs.Sub(FS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
