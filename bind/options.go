package bind

type config struct {
	scalarOnly bool
	coerce     bool
}

type Option func(*config)

// ScalarOnly makes the binder ignore Array members entirely, so that only
// scalar bindings are ever written.
func ScalarOnly() Option { return func(c *config) { c.scalarOnly = true } }

// Coerce lets a scalar member fall back to a binding of another numeric
// or boolean category when no binding of its own category is registered
// under its name and the value converts. Strings never coerce.
func Coerce() Option { return func(c *config) { c.coerce = true } }
