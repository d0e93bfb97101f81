package inline

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cinemind-cli/cinemind/gemini"
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the inline output or of the filter.
func Schema(target string) (*jsonschema.Schema, error) {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "output", "filter":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	switch strings.ToLower(target) {
	case "", "output":
		return reflector.Reflect(&Output{}), nil
	case "filter":
		return reflector.Reflect(&gemini.Filter{}), nil
	default:
		return nil, fmt.Errorf("unknown schema %q, expected output or filter", target)
	}
}
