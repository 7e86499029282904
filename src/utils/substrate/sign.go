package substrate

import (
	"fmt"

	"github.com/warp-contracts/gridclient/src/utils/identity"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"golang.org/x/crypto/blake2b"
)

// Payloads longer than this are hashed before signing
const maxUnhashedPayload = 256

// sign attaches a v4 signature made with the signer's own scheme
func sign(extrinsic *types.Extrinsic, signer *identity.Identity, options types.SignatureOptions) (err error) {
	era := options.Era
	if !era.IsMortalEra {
		era = types.ExtrinsicEra{IsImmortalEra: true}
	}
	options.Era = era

	payload, err := signingPayload(extrinsic.Method, options)
	if err != nil {
		return
	}

	raw, err := signer.Sign(payload)
	if err != nil {
		return
	}

	var signature types.MultiSignature
	switch signer.Scheme() {
	case identity.SchemeSr25519:
		signature = types.MultiSignature{IsSr25519: true, AsSr25519: types.NewSignature(raw)}
	case identity.SchemeEd25519:
		signature = types.MultiSignature{IsEd25519: true, AsEd25519: types.NewSignature(raw)}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedScheme, signer.Scheme())
	}

	address, err := types.NewMultiAddressFromAccountID(signer.PublicKey())
	if err != nil {
		return
	}

	extrinsic.Signature = types.ExtrinsicSignatureV4{
		Signer:    address,
		Signature: signature,
		Era:       era,
		Nonce:     options.Nonce,
		Tip:       options.Tip,
	}
	extrinsic.Version |= types.ExtrinsicBitSigned
	return
}

// signingPayload is the SCALE encoded v4 payload, hashed with blake2b-256 when too long
func signingPayload(method types.Call, options types.SignatureOptions) (out []byte, err error) {
	encodedMethod, err := codec.Encode(method)
	if err != nil {
		return
	}

	out, err = codec.Encode(types.ExtrinsicPayloadV4{
		ExtrinsicPayloadV3: types.ExtrinsicPayloadV3{
			Method:      encodedMethod,
			Era:         options.Era,
			Nonce:       options.Nonce,
			Tip:         options.Tip,
			SpecVersion: options.SpecVersion,
			GenesisHash: options.GenesisHash,
			BlockHash:   options.BlockHash,
		},
		TransactionVersion: options.TransactionVersion,
	})
	if err != nil {
		return
	}

	if len(out) > maxUnhashedPayload {
		hash := blake2b.Sum256(out)
		out = hash[:]
	}
	return
}
