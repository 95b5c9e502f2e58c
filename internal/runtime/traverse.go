package runtime

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/dynurl/pkg/domain"
)

// Member returns the owned member called name of v.
//
// Owned members are map keys, exported struct fields (matched by json or
// mapstructure tag first, then by field name), in-range slice indexes and names
// reported by domain.FieldLookup. Methods are never members.
func Member(v any, name string) (any, bool) {
	if isNil(v) {
		return nil, false
	}
	if fl, ok := v.(domain.FieldLookup); ok {
		return fl.Field(name)
	}
	switch m := v.(type) {
	case map[string]any:
		child, ok := m[name]
		return child, ok
	case map[string]string:
		child, ok := m[name]
		return child, ok
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		child := rv.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !child.IsValid() {
			return nil, false
		}
		return child.Interface(), true
	case reflect.Struct:
		return structField(rv, name)
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(name)
		if err != nil || idx < 0 || idx >= rv.Len() || strconv.Itoa(idx) != name {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	}
	return nil, false
}

// structField only sees fields declared on the struct itself. Fields promoted
// from embedded structs belong to the embedded value, not to the owner.
func structField(rv reflect.Value, name string) (any, bool) {
	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() || f.Anonymous || len(f.Index) > 1 {
			continue
		}
		if fieldName(f) != name {
			continue
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "mapstructure"} {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		tagName, _, _ := strings.Cut(tag, ",")
		if tagName == "-" {
			return ""
		}
		if tagName != "" {
			return tagName
		}
	}
	return f.Name
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
