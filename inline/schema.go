package inline

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/mo"
)

// SchemaKinds lists the documents Schema can describe.
var SchemaKinds = []string{"show", "episodes", "resolve"}

var optionPkg = reflect.TypeOf(mo.Option[int]{}).PkgPath()

// Schema returns the JSON Schema of the document printed for kind.
func Schema(kind string) (*jsonschema.Schema, error) {
	r := newReflector()

	switch kind {
	case "show":
		return r.Reflect(&ShowOutput{}), nil
	case "episodes":
		return r.Reflect(&EpisodesOutput{}), nil
	case "resolve":
		return r.Reflect(&ResolveOutput{}), nil
	default:
		return nil, fmt.Errorf("unknown schema %q, expected one of %s", kind, strings.Join(SchemaKinds, ", "))
	}
}

// newReflector describes optional fields as their value type or null, the way they marshal.
func newReflector() *jsonschema.Reflector {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}

	r.Mapper = func(t reflect.Type) *jsonschema.Schema {
		if t.Kind() != reflect.Struct || t.PkgPath() != optionPkg || !strings.HasPrefix(t.Name(), "Option[") {
			return nil
		}

		value, ok := t.FieldByName("value")
		if !ok {
			return nil
		}

		inner := r.ReflectFromType(value.Type)
		inner.Version = ""
		inner.ID = ""

		return &jsonschema.Schema{
			AnyOf: []*jsonschema.Schema{inner, {Type: "null"}},
		}
	}

	return r
}
