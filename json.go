package bina

import (
	"io"

	"github.com/oarkflow/json"
)

// MarshalEnvironment renders the final variable state as a JSON object keyed
// by variable name.
func MarshalEnvironment(env *Environment) ([]byte, error) {
	m := make(map[string]any, len(env.vars))
	for name, v := range env.vars {
		m[name] = v.Interface()
	}
	return json.Marshal(m)
}

// WriteEnvironment writes the JSON form of env to w, followed by a newline.
func WriteEnvironment(w io.Writer, env *Environment) error {
	data, err := MarshalEnvironment(env)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
