package hcl_adapter

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// envVariables exposes the process environment to expressions as the
// object `env`, so `"${env.USER}-mcp"` interpolates.
func envVariables(environ []string) map[string]cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vals) > 0 {
		env = cty.ObjectVal(vals)
	}
	return map[string]cty.Value{"env": env}
}
