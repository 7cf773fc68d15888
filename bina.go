// Package bina implements a minimal interpreter for a small imperative
// scripting language: a lexer over raw source text, a recursive-descent
// parser, and a tree-walking evaluator threading a flat variable environment.
package bina

// Run executes src for its side effects, discarding the final environment.
func Run(src string) error {
	_, err := Execute(src)
	return err
}

// Execute runs src through the whole pipeline and returns the final variable
// environment. Print statements write to standard output.
func Execute(src string) (*Environment, error) {
	return ExecuteEnv(src, NewEnvironment())
}

// ExecuteEnv runs src against an existing environment, so callers can keep
// variable state across runs (the REPL does) or redirect print output.
func ExecuteEnv(src string, env *Environment) (*Environment, error) {
	program, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return RunProgram(program, env)
}

// Unmarshal executes the script in data and decodes the final variable
// environment into v, which must be a non-nil pointer to a struct or map.
func Unmarshal(data []byte, v any) error {
	env, err := Execute(string(data))
	if err != nil {
		return err
	}
	return Decode(env, v)
}
