package atclient

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
)

// Flexibly converts a map of Lexicon parameters to URL query params. Scalars, [encoding.TextMarshaler], string-kinded types (like [syntax.DID]), and slices of those are supported.
func ParseParams(raw map[string]any) (url.Values, error) {
	out := make(url.Values)
	for k, v := range raw {
		if ref := reflect.ValueOf(v); v != nil && ref.Kind() == reflect.Slice {
			for i := 0; i < ref.Len(); i++ {
				s, err := paramString(ref.Index(i).Interface())
				if err != nil {
					return nil, fmt.Errorf("can't marshal query param '%s': %w", k, err)
				}
				out.Add(k, s)
			}
			continue
		}
		s, err := paramString(v)
		if err != nil {
			return nil, fmt.Errorf("can't marshal query param '%s': %w", k, err)
		}
		out.Set(k, s)
	}
	return out, nil
}

func paramString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case bool, string, int, uint, int8, int16, int32, int64, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val), nil
	case encoding.TextMarshaler:
		b, err := val.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if ref := reflect.ValueOf(v); ref.Kind() == reflect.String {
		return ref.String(), nil
	}
	return "", fmt.Errorf("unsupported type: %T", v)
}
