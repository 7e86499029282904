package model

import (
	"math/big"
)

type Balance struct {
	Free       *big.Int
	Reserved   *big.Int
	MiscFrozen *big.Int
	FeeFrozen  *big.Int
}

type AccountInfo struct {
	Nonce       uint32
	Consumers   uint32
	Providers   uint32
	Sufficients uint32
	Data        Balance
}

func DecodeBalance(raw interface{}, path string) (out Balance, err error) {
	r := newReader(raw, path)
	out.Free = r.bigInt("free")
	out.Reserved = r.bigInt("reserved")

	// Newer runtimes merged both frozen balances into one
	if r.optional("frozen") != nil {
		out.MiscFrozen = r.bigInt("frozen")
		out.FeeFrozen = new(big.Int).Set(out.MiscFrozen)
	} else {
		out.MiscFrozen = r.bigInt("misc_frozen")
		out.FeeFrozen = r.bigInt("fee_frozen")
	}

	err = r.Err()
	return
}

// DecodeAccountInfo reads System.Account. An account without any state has a zero balance.
func DecodeAccountInfo(raw interface{}, path string) (out *AccountInfo, err error) {
	out = &AccountInfo{
		Data: Balance{
			Free:       new(big.Int),
			Reserved:   new(big.Int),
			MiscFrozen: new(big.Int),
			FeeFrozen:  new(big.Int),
		},
	}
	if raw == nil {
		return
	}

	r := newReader(raw, path)
	out.Nonce = r.uint32("nonce")
	out.Consumers = r.uint32("consumers")
	out.Providers = r.uint32("providers")
	out.Sufficients = r.uint32("sufficients")
	out.Data = decodeField(r, "data", DecodeBalance)

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}
