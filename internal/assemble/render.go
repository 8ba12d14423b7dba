package assemble

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nbxorg/sdc-booter/internal/model"
)

// Renderer serializes a boot network document.
type Renderer interface {
	Render(doc *model.BootConfig) ([]byte, error)
}

// JSONRenderer emits the document as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(doc *model.BootConfig) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// YAMLRenderer emits the document as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(doc *model.BootConfig) ([]byte, error) {
	return yaml.Marshal(doc)
}

// RendererFor returns the renderer for a format name.
func RendererFor(format string) (Renderer, error) {
	switch format {
	case "", "json":
		return JSONRenderer{}, nil
	case "yaml", "yml":
		return YAMLRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (expected json or yaml)", format)
}
