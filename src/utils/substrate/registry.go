package substrate

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Primitive type ids of the portable registry
const (
	primitiveBool byte = iota
	primitiveChar
	primitiveStr
	primitiveU8
	primitiveU16
	primitiveU32
	primitiveU64
	primitiveU128
	primitiveU256
	primitiveI8
	primitiveI16
	primitiveI32
	primitiveI64
	primitiveI128
	primitiveI256
)

// Decodes SCALE encoded values into value trees using the runtime's portable type registry
type registry struct {
	meta  *types.Metadata
	types map[int64]types.Si1Type
}

func newRegistry(meta *types.Metadata) (self *registry, err error) {
	if meta.Version != 14 {
		err = fmt.Errorf("%w: v%d", ErrUnsupportedMetadata, meta.Version)
		return
	}

	self = new(registry)
	self.meta = meta
	self.types = make(map[int64]types.Si1Type, len(meta.AsMetadataV14.Lookup.Types))
	for _, t := range meta.AsMetadataV14.Lookup.Types {
		self.types[t.ID.Int64()] = t.Type
	}
	return
}

func (self *registry) pallet(name string) (out *types.PalletMetadataV14, ok bool) {
	for i := range self.meta.AsMetadataV14.Pallets {
		if string(self.meta.AsMetadataV14.Pallets[i].Name) == name {
			return &self.meta.AsMetadataV14.Pallets[i], true
		}
	}
	return
}

func (self *registry) palletByIndex(index byte) (out *types.PalletMetadataV14, ok bool) {
	for i := range self.meta.AsMetadataV14.Pallets {
		if byte(self.meta.AsMetadataV14.Pallets[i].Index) == index {
			return &self.meta.AsMetadataV14.Pallets[i], true
		}
	}
	return
}

// Type of the value stored under pallet.item
func (self *registry) storageValueType(pallet, item string) (out int64, err error) {
	p, ok := self.pallet(pallet)
	if !ok || !p.HasStorage {
		err = fmt.Errorf("%w: %s.%s", ErrStorageItemNotFound, pallet, item)
		return
	}

	for _, entry := range p.Storage.Items {
		if string(entry.Name) != item {
			continue
		}
		if entry.Type.IsPlainType {
			return entry.Type.AsPlainType.Int64(), nil
		}
		return entry.Type.AsMap.Value.Int64(), nil
	}

	err = fmt.Errorf("%w: %s.%s", ErrStorageItemNotFound, pallet, item)
	return
}

func (self *registry) decode(data []byte, typeID int64) (out interface{}, err error) {
	decoder := scale.NewDecoder(bytes.NewReader(data))
	return self.decodeValue(decoder, typeID)
}

func (self *registry) lookup(typeID int64) (out types.Si1Type, err error) {
	out, ok := self.types[typeID]
	if !ok {
		err = fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return
}

func (self *registry) isOption(t types.Si1Type) bool {
	return len(t.Path) > 0 && string(t.Path[len(t.Path)-1]) == "Option" && t.Def.IsVariant
}

func (self *registry) isByte(typeID int64) bool {
	t, ok := self.types[typeID]
	return ok && t.Def.IsPrimitive && byte(t.Def.Primitive.Si0TypeDefPrimitive) == primitiveU8
}

func (self *registry) decodeValue(decoder *scale.Decoder, typeID int64) (out interface{}, err error) {
	t, err := self.lookup(typeID)
	if err != nil {
		return
	}
	def := t.Def

	switch {
	case def.IsComposite:
		return self.decodeFields(decoder, def.Composite.Fields)

	case def.IsVariant:
		var index byte
		index, err = decoder.ReadOneByte()
		if err != nil {
			return
		}

		for _, v := range def.Variant.Variants {
			if byte(v.Index) != index {
				continue
			}

			if self.isOption(t) {
				if len(v.Fields) == 0 {
					// None
					return nil, nil
				}
				return self.decodeValue(decoder, v.Fields[0].Type.Int64())
			}

			if len(v.Fields) == 0 {
				return string(v.Name), nil
			}

			var payload interface{}
			payload, err = self.decodeFields(decoder, v.Fields)
			if err != nil {
				return
			}
			return map[string]interface{}{string(v.Name): payload}, nil
		}
		err = fmt.Errorf("%w: variant index %d of type %d", ErrUnsupportedType, index, typeID)
		return

	case def.IsSequence:
		var length *big.Int
		length, err = decoder.DecodeUintCompact()
		if err != nil {
			return
		}
		return self.decodeSequence(decoder, def.Sequence.Type.Int64(), length.Uint64())

	case def.IsArray:
		return self.decodeSequence(decoder, def.Array.Type.Int64(), uint64(def.Array.Len))

	case def.IsTuple:
		if len(def.Tuple) == 0 {
			return nil, nil
		}
		list := make([]interface{}, 0, len(def.Tuple))
		for _, id := range def.Tuple {
			var item interface{}
			item, err = self.decodeValue(decoder, id.Int64())
			if err != nil {
				return
			}
			list = append(list, item)
		}
		return list, nil

	case def.IsPrimitive:
		return decodePrimitive(decoder, byte(def.Primitive.Si0TypeDefPrimitive))

	case def.IsCompact:
		var n *big.Int
		n, err = decoder.DecodeUintCompact()
		if err != nil {
			return
		}
		if n.IsUint64() {
			return n.Uint64(), nil
		}
		return n, nil
	}

	err = fmt.Errorf("%w: %d", ErrUnsupportedType, typeID)
	return
}

func (self *registry) decodeFields(decoder *scale.Decoder, fields []types.Si1Field) (out interface{}, err error) {
	if len(fields) == 0 {
		return nil, nil
	}

	if fields[0].HasName {
		m := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			var v interface{}
			v, err = self.decodeValue(decoder, f.Type.Int64())
			if err != nil {
				return
			}
			m[string(f.Name)] = v
		}
		return m, nil
	}

	// New type wrappers are transparent
	if len(fields) == 1 {
		return self.decodeValue(decoder, fields[0].Type.Int64())
	}

	list := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		var v interface{}
		v, err = self.decodeValue(decoder, f.Type.Int64())
		if err != nil {
			return
		}
		list = append(list, v)
	}
	return list, nil
}

func (self *registry) decodeSequence(decoder *scale.Decoder, elemType int64, length uint64) (out interface{}, err error) {
	if self.isByte(elemType) {
		return readBytes(decoder, int(length))
	}

	list := make([]interface{}, 0, length)
	for i := uint64(0); i < length; i++ {
		var v interface{}
		v, err = self.decodeValue(decoder, elemType)
		if err != nil {
			return
		}
		list = append(list, v)
	}
	return list, nil
}

func readBytes(decoder *scale.Decoder, size int) (out []byte, err error) {
	out = make([]byte, size)
	if size == 0 {
		return
	}
	err = decoder.Read(out)
	return
}

func leToBig(buf []byte) *big.Int {
	be := make([]byte, len(buf))
	for i := range buf {
		be[len(buf)-1-i] = buf[i]
	}
	return new(big.Int).SetBytes(be)
}

func decodePrimitive(decoder *scale.Decoder, primitive byte) (out interface{}, err error) {
	switch primitive {
	case primitiveBool:
		var b byte
		b, err = decoder.ReadOneByte()
		return b != 0, err
	case primitiveStr:
		var length *big.Int
		length, err = decoder.DecodeUintCompact()
		if err != nil {
			return
		}
		var buf []byte
		buf, err = readBytes(decoder, int(length.Uint64()))
		return string(buf), err
	}

	sizes := map[byte]int{
		primitiveChar: 4,
		primitiveU8:   1, primitiveU16: 2, primitiveU32: 4, primitiveU64: 8, primitiveU128: 16, primitiveU256: 32,
		primitiveI8: 1, primitiveI16: 2, primitiveI32: 4, primitiveI64: 8, primitiveI128: 16, primitiveI256: 32,
	}
	size, ok := sizes[primitive]
	if !ok {
		err = fmt.Errorf("%w: primitive %d", ErrUnsupportedType, primitive)
		return
	}

	buf, err := readBytes(decoder, size)
	if err != nil {
		return
	}
	n := leToBig(buf)

	switch primitive {
	case primitiveChar:
		return string(rune(n.Int64())), nil
	case primitiveI8, primitiveI16, primitiveI32, primitiveI64, primitiveI128, primitiveI256:
		// Two's complement
		if buf[size-1]&0x80 != 0 {
			n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(size*8)))
		}
		if n.IsInt64() {
			return n.Int64(), nil
		}
		return n, nil
	}

	if n.IsUint64() {
		return n.Uint64(), nil
	}
	return n, nil
}

// Human readable name of a dispatch error, e.g. SmartContractModule.ContractNotExists
func (self *registry) dispatchErrorMessage(raw interface{}) string {
	name, payload, err := variant.Variant(raw, "dispatch_error")
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}

	if name != "Module" {
		inner, _, err := variant.Variant(payload, "dispatch_error."+name)
		if err == nil {
			return name + "." + inner
		}
		return name
	}

	module, err := variant.Map(payload, "dispatch_error.Module")
	if err != nil {
		return name
	}
	index, err := variant.Uint64(module["index"], "index")
	if err != nil {
		return name
	}
	errBytes, err := variant.Bytes(module["error"], "error")
	if err != nil || len(errBytes) == 0 {
		// Older runtimes encode the error as a single u8
		code, err := variant.Uint64(module["error"], "error")
		if err != nil {
			return name
		}
		errBytes = []byte{byte(code)}
	}

	pallet, ok := self.palletByIndex(byte(index))
	if !ok || !pallet.HasErrors {
		return fmt.Sprintf("Module(%d).%d", index, errBytes[0])
	}

	t, err := self.lookup(pallet.Errors.Type.Int64())
	if err != nil || !t.Def.IsVariant {
		return fmt.Sprintf("%s.%d", pallet.Name, errBytes[0])
	}
	for _, v := range t.Def.Variant.Variants {
		if byte(v.Index) == errBytes[0] {
			return fmt.Sprintf("%s.%s", pallet.Name, v.Name)
		}
	}
	return fmt.Sprintf("%s.%d", pallet.Name, errBytes[0])
}
