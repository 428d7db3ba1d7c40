package linkdb

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// requiredFields are the options every insert must carry as strings.
var requiredFields = []string{"uri", "id", "description", "database"}

// DecodeOptions converts an untyped options value, as produced by decoding a
// JSON or YAML document, into Options. It panics with an
// *InvalidArgumentError if v is not an object or a field has the wrong type.
func DecodeOptions(v any) *Options {
	switch o := v.(type) {
	case *Options:
		validateOptions(o)
		return o
	case Options:
		validateOptions(&o)
		return &o
	case map[string]any:
		return decodeMap(o)
	}
	fault("", "options argument must be an object", v)
	return nil
}

func decodeMap(m map[string]any) *Options {
	for _, key := range requiredFields {
		val, ok := m[key]
		if !ok {
			fault(key, "is required", nil)
		}
		if _, ok := val.(string); !ok {
			fault(key, "must be a string", val)
		}
	}
	if kw, ok := m["keywords"]; ok && kw != nil && !isStringList(kw) {
		fault("keywords", "must be an array of strings", kw)
	}

	var opts Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &opts,
		TagName: "mapstructure",
	})
	if err != nil {
		panic(fmt.Errorf("building options decoder: %w", err))
	}
	if err := dec.Decode(m); err != nil {
		fault("", err.Error(), m)
	}

	validateOptions(&opts)
	return &opts
}

// validateOptions checks what the type system cannot.
func validateOptions(o *Options) {
	if o == nil {
		fault("", "options argument must be an object", nil)
	}
	if o.Database == "" {
		fault("database", "must be a non-empty string", o.Database)
	}
}

func isStringList(v any) bool {
	switch list := v.(type) {
	case []string:
		return true
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}
