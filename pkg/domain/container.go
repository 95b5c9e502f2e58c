package domain

// ValueContainer is a value holder whose current value is substituted instead of the holder.
type ValueContainer interface {
	Get() (any, error)
}

// Getter is the error-free form of ValueContainer.
type Getter interface {
	Get() any
}

// FieldLookup lets a value expose its own members to dotted namespace paths
// without relying on reflection. Only names reported here are considered owned.
type FieldLookup interface {
	Field(name string) (any, bool)
}

// Unwrapper decides whether v is a container and, if so, returns its current value.
// handled=false means v is used as-is.
type Unwrapper func(v any) (value any, handled bool, err error)

// Attributes is a map-backed element, the usual shape of a triggering element outside a DOM.
type Attributes map[string]string

// Attr returns the attribute value or "" when missing.
func (a Attributes) Attr(name string) string {
	return a[name]
}

// Lookup returns the attribute and whether it was present.
func (a Attributes) Lookup(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}
