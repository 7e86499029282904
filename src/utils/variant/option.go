package variant

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Option mirrors the chain's Option<T>. AsValue is meaningful only when HasValue is true.
type Option[T any] struct {
	HasValue bool
	AsValue  T
}

func Some[T any](v T) Option[T] {
	return Option[T]{HasValue: true, AsValue: v}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is set. The returned value is T's zero value for None.
func (self Option[T]) Get() (out T, ok bool) {
	if !self.HasValue {
		return
	}
	return self.AsValue, true
}

// Or returns the value or the fallback for None
func (self Option[T]) Or(fallback T) T {
	if !self.HasValue {
		return fallback
	}
	return self.AsValue
}

// Encode writes the SCALE representation used by calls: 0x00 for None, 0x01 followed by the value for Some
func (self Option[T]) Encode(encoder scale.Encoder) (err error) {
	if !self.HasValue {
		return encoder.PushByte(0)
	}
	err = encoder.PushByte(1)
	if err != nil {
		return
	}
	return encoder.Encode(self.AsValue)
}

// DecodeOption reads an optional value. nil, "None" and {"None": _} decode to None,
// {"Some": v} and any other value decode to Some.
func DecodeOption[T any](raw interface{}, path string, decode func(raw interface{}, path string) (T, error)) (out Option[T], err error) {
	if raw == nil {
		return
	}

	switch v := raw.(type) {
	case string:
		if v == "None" {
			return
		}
	case map[string]interface{}:
		if len(v) == 1 {
			if _, ok := v["None"]; ok {
				return
			}
			if inner, ok := v["Some"]; ok {
				raw = inner
			}
		}
	}

	value, err := decode(raw, path)
	if err != nil {
		return
	}
	return Some(value), nil
}
