package render

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// The serializing renderers accept any output value. They are wired
// into the generated override dispatch under the names declared in
// registry.toml.

// JSON renders the value as compact JSON.
func JSON(v any) (Result, error) {
	var r Result
	data, err := json.Marshal(v)
	if err != nil {
		return r, &SerializeError{Format: "json", Err: err}
	}
	r.Print(string(data))
	return r, nil
}

// JSONPretty renders the value as indented JSON.
func JSONPretty(v any) (Result, error) {
	var r Result
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return r, &SerializeError{Format: "json", Err: err}
	}
	r.Print(string(data))
	return r, nil
}

// YAML renders the value as YAML.
func YAML(v any) (Result, error) {
	var r Result
	data, err := yaml.Marshal(v)
	if err != nil {
		return r, &SerializeError{Format: "yaml", Err: err}
	}
	r.Print(string(data))
	return r, nil
}

// TOML renders the value as TOML.
func TOML(v any) (Result, error) {
	var r Result
	data, err := toml.Marshal(v)
	if err != nil {
		return r, &SerializeError{Format: "toml", Err: err}
	}
	r.Print(string(data))
	return r, nil
}

// None renders nothing. Useful when a command is run for its side
// effects and the output should stay silent.
func None(v any) (Result, error) {
	return Result{}, nil
}
