// File: caep/collection.go
package caep

import "strings"

// splitList turns a raw delimited string into a slice of elem-typed values.
// A blank value yields an empty slice. Each part is trimmed before element
// conversion. Returns *FieldError when fewer than minSize elements result.
func splitList(field, value string, elem Kind, split string, minSize int) ([]any, error) {
	out := []any{}
	if strings.TrimSpace(value) != "" {
		for _, part := range escapeSplit(value, split, 0) {
			v, err := coerceScalar(elem, strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	if len(out) < minSize {
		return nil, fieldErrorf(field, "expected at least %d element(s), got %d", minSize, len(out))
	}
	return out, nil
}

// splitMap turns a raw delimited string into a key/value mapping. Items are
// split on split, then each item must split on kvSplit into exactly two
// parts; both sides are trimmed and the value side converted to elem. The
// last occurrence of a duplicate key wins. Returns *FieldError for items
// without a key/value separator or when fewer than minSize keys result.
func splitMap(field, value string, elem Kind, split, kvSplit string, minSize int) (map[string]any, error) {
	out := map[string]any{}
	if strings.TrimSpace(value) != "" {
		for _, item := range escapeSplit(value, split, 0) {
			kv := escapeSplit(item, kvSplit, 2)
			if len(kv) != 2 {
				return nil, fieldErrorf(field, "unable to split %q by %q", item, kvSplit)
			}

			v, err := coerceScalar(elem, strings.TrimSpace(kv[1]))
			if err != nil {
				return nil, err
			}
			out[strings.TrimSpace(kv[0])] = v
		}
	}

	if len(out) < minSize {
		return nil, fieldErrorf(field, "expected at least %d key(s), got %d", minSize, len(out))
	}
	return out, nil
}
