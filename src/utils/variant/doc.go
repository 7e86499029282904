// Package variant turns chain values decoded into generic trees into typed values.
//
// A tree is built from:
//   - map[string]interface{} for structs with named fields
//   - []interface{} for sequences, tuples and structs with unnamed fields
//   - []byte for byte sequences and byte arrays
//   - uint64, int64, *big.Int, bool and string for primitives
//   - nil for an empty Option, the inner value for a filled one
//   - string for an enum variant without payload, a single entry map {name: payload} otherwise
package variant
