package model

type EntityProof struct {
	EntityID  uint32
	Signature []byte
}

func decodeEntityProof(raw interface{}, path string) (out EntityProof, err error) {
	r := newReader(raw, path)
	out.EntityID = r.uint32("entity_id")
	out.Signature = r.bytes("signature")
	err = r.Err()
	return
}

// Twin is the on-chain identity owning farms, nodes, contracts and deployments
type Twin struct {
	Version   uint32
	ID        uint32
	AccountID [32]byte
	IP        string
	Entities  []EntityProof
}

func DecodeTwin(raw interface{}, path string) (out *Twin, err error) {
	r := newReader(raw, path)

	out = new(Twin)
	out.Version = r.uint32("version")
	out.ID = r.uint32("id")
	out.AccountID = r.hash32("account_id")
	out.IP = r.string("ip")
	out.Entities = decodeList(r, "entities", decodeEntityProof)

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}
