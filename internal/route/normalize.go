package route

import "reflect"

// Normalize converts a path in any supported caller representation into its
// canonical segment sequence. Supported shapes:
//
//   - string or Path, split on the separator
//   - []string, used as given
//   - a slice of any named type whose underlying kind is string
//     (enumerated labels such as []command.Resource)
//
// Unrecognized shapes and empty inputs normalize to an empty sequence,
// which every registry operation treats as a no-op. The tree logic itself
// only ever sees the canonical []string form.
func Normalize(input any) []string {
	switch v := input.(type) {
	case nil:
		return nil
	case string:
		return Path(v).Segments()
	case Path:
		return v.Segments()
	case []string:
		if len(v) == 0 {
			return nil
		}
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []Path:
		if len(v) == 0 {
			return nil
		}
		out := make([]string, len(v))
		for i, p := range v {
			out[i] = string(p)
		}
		return out
	}

	// Enumerated-label sequences: any slice whose element type has a string
	// underlying representation.
	rv := reflect.ValueOf(input)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.String {
		if rv.Len() == 0 {
			return nil
		}
		out := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).String()
		}
		return out
	}

	return nil
}
