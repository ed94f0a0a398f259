package ocmd

import (
	"strconv"

	"github.com/oomph-ac/ocmd/assert"
)

// ResolverFunc parses a single argument token into a typed value. A non-nil
// error marks the token as invalid for the kind; the error itself is not
// shown to the source.
type ResolverFunc func(arg string) (interface{}, error)

// Resolvers maps kind names to the functions parsing arguments of that
// kind. Kinds should be registered during startup, before the handler
// starts dispatching.
type Resolvers struct {
	kinds map[string]ResolverFunc
}

func newResolvers() *Resolvers {
	return &Resolvers{kinds: map[string]ResolverFunc{
		"integer": func(arg string) (interface{}, error) {
			return strconv.Atoi(arg)
		},
		"number": func(arg string) (interface{}, error) {
			return strconv.ParseFloat(arg, 64)
		},
		"boolean": func(arg string) (interface{}, error) {
			return strconv.ParseBool(arg)
		},
	}}
}

// Register registers a resolver for the kind passed, overwriting an earlier
// resolver of the same kind. The kind name is echoed to the source when an
// argument fails to resolve ("Invalid <kind>: <arg>").
func (r *Resolvers) Register(kind string, f ResolverFunc) {
	r.kinds[kind] = f
}

// Resolve parses argument i of the context as the kind passed. When the
// argument cannot be parsed, the handler's resolver fallback replies to the
// source and a Failure is returned.
func (ctx *Context) Resolve(kind string, i int) (interface{}, error) {
	if i >= len(ctx.Args) {
		return nil, ctx.h.invalidUsage(ctx)
	}
	f, ok := ctx.h.resolvers.kinds[kind]
	assert.IsTrue(ok, "ocmd: no resolver registered for kind %s", kind)
	v, err := f(ctx.Args[i])
	if err != nil {
		return nil, ctx.h.resolverFail(ctx, kind, ctx.Args[i])
	}
	return v, nil
}

// Int resolves argument i as an integer.
func (ctx *Context) Int(i int) (int, error) {
	v, err := ctx.Resolve("integer", i)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Float64 resolves argument i as a number.
func (ctx *Context) Float64(i int) (float64, error) {
	v, err := ctx.Resolve("number", i)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Bool resolves argument i as a boolean.
func (ctx *Context) Bool(i int) (bool, error) {
	v, err := ctx.Resolve("boolean", i)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}
