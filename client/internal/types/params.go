package types

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Param is a single query parameter. A nil Value (or a nil pointer) is
// omitted from the query string.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters. Order is preserved on the
// wire, which a map could not guarantee.
type Params []Param

// P is shorthand for building a Param.
func P(key string, value any) Param { return Param{Key: key, Value: value} }

// Encode renders the defined parameters as a form-encoded query string in
// slice order. Values are stringified with fmt.Sprint; pointers are
// dereferenced first.
func (ps Params) Encode() string {
	var b strings.Builder
	for _, p := range ps {
		v, ok := scalar(p.Value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String()
}

func scalar(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface()), true
}
