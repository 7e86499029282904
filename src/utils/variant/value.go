package variant

import (
	"math"
	"math/big"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

func Join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func Map(raw interface{}, path string) (out map[string]interface{}, err error) {
	out, ok := raw.(map[string]interface{})
	if !ok {
		err = Errorf(path, "expected map, got %T", raw)
	}
	return
}

// Field returns a required key of a struct-like value
func Field(m map[string]interface{}, key, path string) (out interface{}, err error) {
	out, ok := m[key]
	if !ok {
		err = Errorf(Join(path, key), "missing field")
	}
	return
}

// FieldAt reads a field of an event or call payload that may come either with named fields (map),
// unnamed fields (slice) or as a single unwrapped value. A single unwrapped struct is returned as a whole.
func FieldAt(fields interface{}, index int, key, path string) (out interface{}, err error) {
	switch v := fields.(type) {
	case map[string]interface{}:
		if value, ok := v[key]; ok {
			return value, nil
		}
		if index == 0 {
			// Single unnamed struct field, unwrapped
			return v, nil
		}
		return Field(v, key, path)
	case []interface{}:
		if index >= len(v) {
			err = Errorf(Join(path, key), "missing field at position %d", index)
			return
		}
		return v[index], nil
	}
	if index == 0 && fields != nil {
		return fields, nil
	}
	err = Errorf(Join(path, key), "missing field")
	return
}

func Slice(raw interface{}, path string) (out []interface{}, err error) {
	switch v := raw.(type) {
	case []interface{}:
		return v, nil
	case nil:
		return []interface{}{}, nil
	}
	err = Errorf(path, "expected sequence, got %T", raw)
	return
}

func Bool(raw interface{}, path string) (out bool, err error) {
	out, ok := raw.(bool)
	if !ok {
		err = Errorf(path, "expected bool, got %T", raw)
	}
	return
}

func BigInt(raw interface{}, path string) (out *big.Int, err error) {
	switch v := raw.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case string:
		out, ok := new(big.Int).SetString(v, 0)
		if !ok {
			return nil, Errorf(path, "invalid number %q", v)
		}
		return out, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, Errorf(path, "expected integer, got %v", v)
		}
		out, _ = new(big.Float).SetFloat64(v).Int(nil)
		return
	}

	value := reflect.ValueOf(raw)
	switch value.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(value.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(value.Int()), nil
	}
	return nil, Errorf(path, "expected integer, got %T", raw)
}

func Uint64(raw interface{}, path string) (out uint64, err error) {
	n, err := BigInt(raw, path)
	if err != nil {
		return
	}
	if n.Sign() < 0 || !n.IsUint64() {
		err = Errorf(path, "value %s out of range", n)
		return
	}
	return n.Uint64(), nil
}

func Uint32(raw interface{}, path string) (out uint32, err error) {
	n, err := Uint64(raw, path)
	if err != nil {
		return
	}
	if n > math.MaxUint32 {
		err = Errorf(path, "value %d out of range", n)
		return
	}
	return uint32(n), nil
}

// Bytes accepts byte slices, strings and sequences of small numbers
func Bytes(raw interface{}, path string) (out []byte, err error) {
	switch v := raw.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case nil:
		return []byte{}, nil
	case []interface{}:
		out = make([]byte, len(v))
		for i, b := range v {
			var n uint64
			n, err = Uint64(b, path)
			if err != nil {
				return
			}
			if n > math.MaxUint8 {
				err = Errorf(path, "byte %d out of range", n)
				return
			}
			out[i] = byte(n)
		}
		return
	}
	err = Errorf(path, "expected bytes, got %T", raw)
	return
}

func String(raw interface{}, path string) (out string, err error) {
	b, err := Bytes(raw, path)
	if err != nil {
		return
	}
	return string(b), nil
}

// Hash32 reads a fixed 32 byte array
func Hash32(raw interface{}, path string) (out [32]byte, err error) {
	b, err := Bytes(raw, path)
	if err != nil {
		return
	}
	if len(b) != len(out) {
		err = Errorf(path, "expected 32 bytes, got %d", len(b))
		return
	}
	copy(out[:], b)
	return
}

func bytesToStringHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if b, ok := data.([]byte); ok {
		return string(b), nil
	}
	return data, nil
}

func bigIntToUintHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	n, ok := data.(*big.Int)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n.Sign() < 0 || !n.IsUint64() {
			return nil, Errorf("", "value %s out of range", n)
		}
		return n.Uint64(), nil
	}
	return data, nil
}

// DecodeStruct fills a plain struct from a struct-like value. Every field of out has to be present.
// Fields are matched using the `mapstructure` tag.
func DecodeStruct(raw interface{}, path string, out interface{}) (err error) {
	m, err := Map(raw, path)
	if err != nil {
		return
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnset:       true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			bytesToStringHook,
			bigIntToUintHook,
		),
	})
	if err != nil {
		return
	}

	err = decoder.Decode(m)
	if err != nil {
		return Errorf(path, "%s", err.Error())
	}
	return
}
