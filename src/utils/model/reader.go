package model

import (
	"math/big"

	"github.com/warp-contracts/gridclient/src/utils/variant"
)

// reader walks a struct-like value tree. The first error sticks and all following reads return zero values.
type reader struct {
	m    map[string]interface{}
	path string
	err  error
}

func newReader(raw interface{}, path string) (self *reader) {
	self = new(reader)
	self.path = path
	self.m, self.err = variant.Map(raw, path)
	return
}

func (self *reader) Err() error {
	return self.err
}

func (self *reader) fail(err error) {
	if self.err == nil {
		self.err = err
	}
}

func (self *reader) at(key string) string {
	return variant.Join(self.path, key)
}

// raw returns a required field
func (self *reader) raw(key string) (out interface{}) {
	if self.err != nil {
		return
	}
	out, err := variant.Field(self.m, key, self.path)
	self.fail(err)
	return
}

// optional returns a field that may be missing altogether, e.g. on older runtimes
func (self *reader) optional(key string) (out interface{}) {
	if self.err != nil {
		return
	}
	return self.m[key]
}

func (self *reader) uint64(key string) (out uint64) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.Uint64(raw, self.at(key))
	self.fail(err)
	return
}

func (self *reader) uint32(key string) (out uint32) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.Uint32(raw, self.at(key))
	self.fail(err)
	return
}

func (self *reader) bigInt(key string) (out *big.Int) {
	raw := self.raw(key)
	if self.err != nil {
		return new(big.Int)
	}
	out, err := variant.BigInt(raw, self.at(key))
	self.fail(err)
	if out == nil {
		out = new(big.Int)
	}
	return
}

func (self *reader) bool(key string) (out bool) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.Bool(raw, self.at(key))
	self.fail(err)
	return
}

func (self *reader) bytes(key string) (out []byte) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.Bytes(raw, self.at(key))
	self.fail(err)
	return
}

func (self *reader) string(key string) (out string) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.String(raw, self.at(key))
	self.fail(err)
	return
}

func (self *reader) hash32(key string) (out [32]byte) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.Hash32(raw, self.at(key))
	self.fail(err)
	return
}

func (self *reader) slice(key string) (out []interface{}) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := variant.Slice(raw, self.at(key))
	self.fail(err)
	return
}

// decode runs a typed decoder on a required field
func decodeField[T any](self *reader, key string, decode func(raw interface{}, path string) (T, error)) (out T) {
	raw := self.raw(key)
	if self.err != nil {
		return
	}
	out, err := decode(raw, self.at(key))
	self.fail(err)
	return
}

// decodeOptionField reads an Option<T>. A missing key decodes to None.
func decodeOptionField[T any](self *reader, key string, decode func(raw interface{}, path string) (T, error)) (out variant.Option[T]) {
	raw := self.optional(key)
	if self.err != nil {
		return
	}
	out, err := variant.DecodeOption(raw, self.at(key), decode)
	self.fail(err)
	return
}

// decodeList decodes every element of a sequence field
func decodeList[T any](self *reader, key string, decode func(raw interface{}, path string) (T, error)) (out []T) {
	items := self.slice(key)
	out = make([]T, 0, len(items))
	for i, item := range items {
		if self.err != nil {
			return
		}
		value, err := decode(item, variant.Join(self.at(key), itoa(i)))
		self.fail(err)
		out = append(out, value)
	}
	return
}

// fieldReader reads event payloads whose fields come either named or positional
type fieldReader struct {
	fields interface{}
	path   string
	err    error
}

func newFieldReader(fields interface{}, path string) *fieldReader {
	return &fieldReader{fields: fields, path: path}
}

func (self *fieldReader) Err() error {
	return self.err
}

func (self *fieldReader) raw(index int, key string) (out interface{}) {
	if self.err != nil {
		return
	}
	out, self.err = variant.FieldAt(self.fields, index, key, self.path)
	return
}

func (self *fieldReader) uint64(index int, key string) (out uint64) {
	return decodeFieldAt(self, index, key, decodeUint64)
}

func (self *fieldReader) uint32(index int, key string) (out uint32) {
	return decodeFieldAt(self, index, key, decodeUint32)
}

func (self *fieldReader) string(index int, key string) (out string) {
	return decodeFieldAt(self, index, key, decodeString)
}

func (self *fieldReader) bytes(index int, key string) (out []byte) {
	return decodeFieldAt(self, index, key, decodeBytes)
}

func (self *fieldReader) hash32(index int, key string) (out [32]byte) {
	return decodeFieldAt(self, index, key, variant.Hash32)
}

func decodeFieldAt[T any](self *fieldReader, index int, key string, decode func(raw interface{}, path string) (T, error)) (out T) {
	raw := self.raw(index, key)
	if self.err != nil {
		return
	}
	out, self.err = decode(raw, variant.Join(self.path, key))
	return
}
