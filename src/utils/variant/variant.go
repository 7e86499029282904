package variant

import (
	"sort"
	"strings"
)

// Variant splits an enum value into its tag and payload.
// Unit variants come as plain strings, variants with data as single entry maps.
func Variant(raw interface{}, path string) (name string, payload interface{}, err error) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			err = Errorf(path, "empty variant tag")
			return
		}
		return v, nil, nil
	case map[string]interface{}:
		if len(v) != 1 {
			err = Errorf(path, "expected exactly one variant tag, got %d (%s)", len(v), strings.Join(keys(v), ","))
			return
		}
		for k, p := range v {
			name, payload = k, p
		}
		return
	case nil:
		err = Errorf(path, "missing variant")
		return
	}
	err = Errorf(path, "expected variant, got %T", raw)
	return
}

// Expect is Variant restricted to a closed set of tags
func Expect(raw interface{}, path string, allowed ...string) (name string, payload interface{}, err error) {
	name, payload, err = Variant(raw, path)
	if err != nil {
		return
	}
	for _, a := range allowed {
		if a == name {
			return
		}
	}
	err = Errorf(path, "unknown variant %q, expected one of %s", name, strings.Join(allowed, ","))
	return
}

// ExactlyOne checks the discriminants of a decoded tagged union
func ExactlyOne(path string, discriminants ...bool) error {
	count := 0
	for _, d := range discriminants {
		if d {
			count++
		}
	}
	if count != 1 {
		return Errorf(path, "%d discriminants set", count)
	}
	return nil
}

func keys(m map[string]interface{}) (out []string) {
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return
}
