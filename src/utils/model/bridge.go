package model

type StellarSignature struct {
	Signature     []byte
	StellarPubKey []byte
}

func decodeStellarSignature(raw interface{}, path string) (out StellarSignature, err error) {
	r := newReader(raw, path)
	out.Signature = r.bytes("signature")
	out.StellarPubKey = r.bytes("stellar_pub_key")
	err = r.Err()
	return
}

type RefundTransaction struct {
	Block          uint64
	Amount         uint64
	Target         string
	TxHash         string
	Signatures     []StellarSignature
	SequenceNumber uint64
}

func DecodeRefundTransaction(raw interface{}, path string) (out *RefundTransaction, err error) {
	r := newReader(raw, path)

	out = new(RefundTransaction)
	out.Block = r.uint64("block")
	out.Amount = r.uint64("amount")
	out.Target = r.string("target")
	out.TxHash = r.string("tx_hash")
	out.Signatures = decodeList(r, "signatures", decodeStellarSignature)
	out.SequenceNumber = r.uint64("sequence_number")

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}

type MintTransaction struct {
	Amount uint64
	Target [32]byte
	Block  uint64
	Votes  uint32
}

func DecodeMintTransaction(raw interface{}, path string) (out *MintTransaction, err error) {
	r := newReader(raw, path)

	out = new(MintTransaction)
	out.Amount = r.uint64("amount")
	out.Target = r.hash32("target")
	out.Block = r.uint64("block")
	out.Votes = r.uint32("votes")

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}
