package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// envelopeSchema is the structural contract an envelope must satisfy
// before decoding. It pins the two required slices and the value
// shapes of the rest; unknown extra fields are tolerated.
const envelopeSchema = `{
  "type": "object",
  "required": ["exportVersion", "answers"],
  "properties": {
    "exportVersion": {"type": "string"},
    "exportDate": {"type": "string"},
    "answers": {
      "type": "object",
      "additionalProperties": {
        "anyOf": [
          {"type": "string"},
          {"type": "array", "items": {"type": "string"}},
          {"type": "null"}
        ]
      }
    },
    "selectedRole": {
      "anyOf": [{"type": "object"}, {"type": "null"}]
    },
    "progress": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["completed"],
        "properties": {
          "completed": {"type": "boolean"},
          "hoursLogged": {"type": "number", "minimum": 0},
          "dateCompleted": {"type": "string"},
          "notes": {"type": "string"}
        }
      }
    },
    "settings": {"type": "object"}
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateEnvelope checks raw bytes against the envelope schema.
// Returns ErrMalformed on any structural violation.
func validateEnvelope(data []byte) error {
	compileOnce.Do(func() {
		var def any
		if compileErr = json.Unmarshal([]byte(envelopeSchema), &def); compileErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if compileErr = c.AddResource("schema://snapshot-envelope.json", def); compileErr != nil {
			return
		}
		compiled, compileErr = c.Compile("schema://snapshot-envelope.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile envelope schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrMalformed, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
