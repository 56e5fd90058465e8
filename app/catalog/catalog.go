package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

var defaultCatalog = mustDecode(defaultDocument)

// Default returns the built-in catalog. The value is shared and must not be modified.
func Default() *entity.Catalog {
	return defaultCatalog
}

func Decode(r io.Reader) (*entity.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c entity.Catalog
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return &c, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

func LoadFile(path string) (*entity.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Resolve returns the override catalog at path, or the built-in one when path is empty.
func Resolve(path string) (*entity.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func mustDecode(doc []byte) *entity.Catalog {
	c, err := Decode(bytes.NewReader(doc))
	if err != nil {
		panic(err)
	}
	return c
}
