package model

import (
	"strconv"

	"github.com/warp-contracts/gridclient/src/utils/variant"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func decodeUint32(raw interface{}, path string) (uint32, error) {
	return variant.Uint32(raw, path)
}

func decodeUint64(raw interface{}, path string) (uint64, error) {
	return variant.Uint64(raw, path)
}

func decodeString(raw interface{}, path string) (string, error) {
	return variant.String(raw, path)
}

func decodeBytes(raw interface{}, path string) ([]byte, error) {
	return variant.Bytes(raw, path)
}
