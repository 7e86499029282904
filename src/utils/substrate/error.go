package substrate

import "errors"

var (
	ErrNoUrls                 = errors.New("no chain urls configured")
	ErrUnsupportedMetadata    = errors.New("unsupported metadata version")
	ErrStorageItemNotFound    = errors.New("storage item not found in metadata")
	ErrUnknownType            = errors.New("type not found in metadata")
	ErrUnsupportedType        = errors.New("type can't be decoded")
	ErrExtrinsicRejected      = errors.New("extrinsic rejected")
	ErrExtrinsicNotFound      = errors.New("extrinsic not found in block")
	ErrUnexpectedCallEncoding = errors.New("call wasn't composed by this link")
	ErrUnsupportedScheme      = errors.New("unsupported signature scheme")
)
