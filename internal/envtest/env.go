// Package envtest provides a fake environment variable backend
// for testing purposes.
package envtest

import "fmt"

// Empty is an empty environment.
var Empty Env

// Env is a fake environment mapping variable names to values.
type Env map[string]string

// MustPairs builds an Env from alternating names and values.
// It panics if there's an odd number of items.
func MustPairs(pairs ...string) Env {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("%d items in environment are not even", len(pairs)))
	}

	env := make(Env, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env
}

// Getenv is an analog for the os.Getenv operation.
func (e Env) Getenv(k string) string {
	return e[k]
}
