package model

import (
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

// Event is implemented by every event type of this package
type Event interface {
	Kind() EventKind
}

// OwnedEvent is emitted for an entity owned by a twin
type OwnedEvent interface {
	Event
	OwnerTwinID() uint32
	EntityID() uint64
}

// Phase of the block in which an event was emitted
type Phase struct {
	IsApplyExtrinsic bool
	AsApplyExtrinsic uint32
	IsFinalization   bool
	IsInitialization bool
}

func DecodePhase(raw interface{}, path string) (out Phase, err error) {
	name, payload, err := variant.Expect(raw, path, "ApplyExtrinsic", "Finalization", "Initialization")
	if err != nil {
		return
	}
	switch name {
	case "ApplyExtrinsic":
		out.IsApplyExtrinsic = true
		out.AsApplyExtrinsic, err = variant.Uint32(payload, variant.Join(path, name))
	case "Finalization":
		out.IsFinalization = true
	case "Initialization":
		out.IsInitialization = true
	}
	return
}

type EventRecord struct {
	Phase  Phase
	Event  Event
	Topics [][32]byte
}

// DecodeEventRecord types a raw event. Kinds without a dedicated type decode to GenericEvent,
// kinds this package doesn't know about to UnknownEvent.
func DecodeEventRecord(raw *substrate.RawEvent) (out *EventRecord, err error) {
	kind := EventKind(raw.Kind())
	path := string(kind)

	out = new(EventRecord)
	out.Topics = raw.Topics

	if raw.Phase != nil {
		out.Phase, err = DecodePhase(raw.Phase, variant.Join(path, "phase"))
		if err != nil {
			return nil, err
		}
	}

	decode, ok := eventDecoders[kind]
	switch {
	case ok:
		out.Event, err = decode(raw.Fields, path)
		if err != nil {
			return nil, err
		}
	case kind.IsKnown():
		out.Event = &GenericEvent{EventKind: kind, Fields: raw.Fields}
	default:
		out.Event = &UnknownEvent{Pallet: raw.Pallet, Name: raw.Name, Fields: raw.Fields}
	}
	return
}

// DecodeEvents decodes only the events of the given kind, in emission order
func DecodeEvents(events []substrate.RawEvent, kind EventKind) (out []Event, err error) {
	for i := range events {
		if EventKind(events[i].Kind()) != kind {
			continue
		}
		var record *EventRecord
		record, err = DecodeEventRecord(&events[i])
		if err != nil {
			return
		}
		out = append(out, record.Event)
	}
	return
}

type eventDecoder func(fields interface{}, path string) (Event, error)

var eventDecoders = map[EventKind]eventDecoder{
	EventExtrinsicSuccess: func(fields interface{}, path string) (Event, error) {
		return &ExtrinsicSuccess{}, nil
	},
	EventExtrinsicFailed: func(fields interface{}, path string) (Event, error) {
		dispatchError, err := variant.FieldAt(fields, 0, "dispatch_error", path)
		if err != nil {
			return nil, err
		}
		return &ExtrinsicFailed{DispatchError: dispatchError}, nil
	},

	EventContractCreated: func(fields interface{}, path string) (Event, error) {
		contract, err := decodeContractPayload(fields, path)
		if err != nil {
			return nil, err
		}
		return &ContractCreated{Contract: contract}, nil
	},
	EventContractUpdated: func(fields interface{}, path string) (Event, error) {
		contract, err := decodeContractPayload(fields, path)
		if err != nil {
			return nil, err
		}
		return &ContractUpdated{Contract: contract}, nil
	},
	EventNodeContractCanceled: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &NodeContractCanceled{
			ContractID: r.uint64(0, "contract_id"),
			NodeID:     r.uint32(1, "node_id"),
			TwinID:     r.uint32(2, "twin_id"),
		}
		return out, r.Err()
	},
	EventNameContractCanceled: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &NameContractCanceled{ContractID: r.uint64(0, "contract_id")}
		return out, r.Err()
	},
	EventRentContractCanceled: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &RentContractCanceled{ContractID: r.uint64(0, "contract_id")}
		return out, r.Err()
	},
	EventContractGracePeriodStarted: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &ContractGracePeriodStarted{
			ContractID:  r.uint64(0, "contract_id"),
			NodeID:      r.uint32(1, "node_id"),
			TwinID:      r.uint32(2, "twin_id"),
			BlockNumber: r.uint64(3, "block_number"),
		}
		return out, r.Err()
	},
	EventContractGracePeriodEnded: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &ContractGracePeriodEnded{
			ContractID: r.uint64(0, "contract_id"),
			NodeID:     r.uint32(1, "node_id"),
			TwinID:     r.uint32(2, "twin_id"),
		}
		return out, r.Err()
	},

	EventDeploymentCreated: func(fields interface{}, path string) (Event, error) {
		deployment, err := decodeDeploymentPayload(fields, path)
		if err != nil {
			return nil, err
		}
		return &DeploymentCreated{Deployment: deployment}, nil
	},
	EventDeploymentUpdated: func(fields interface{}, path string) (Event, error) {
		deployment, err := decodeDeploymentPayload(fields, path)
		if err != nil {
			return nil, err
		}
		return &DeploymentUpdated{Deployment: deployment}, nil
	},
	EventDeploymentCanceled: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &DeploymentCanceled{
			DeploymentID:          r.uint64(0, "deployment_id"),
			TwinID:                r.uint32(1, "twin_id"),
			NodeID:                r.uint32(2, "node_id"),
			CapacityReservationID: r.uint64(3, "capacity_reservation_id"),
		}
		return out, r.Err()
	},

	EventTwinStored: func(fields interface{}, path string) (Event, error) {
		twin, err := decodePayload(fields, path, "twin", DecodeTwin)
		if err != nil {
			return nil, err
		}
		return &TwinStored{Twin: twin}, nil
	},
	EventTwinUpdated: func(fields interface{}, path string) (Event, error) {
		twin, err := decodePayload(fields, path, "twin", DecodeTwin)
		if err != nil {
			return nil, err
		}
		return &TwinUpdated{Twin: twin}, nil
	},
	EventTwinDeleted: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &TwinDeleted{TwinID: r.uint32(0, "twin_id")}
		return out, r.Err()
	},
	EventFarmStored: func(fields interface{}, path string) (Event, error) {
		farm, err := decodePayload(fields, path, "farm", DecodeFarm)
		if err != nil {
			return nil, err
		}
		return &FarmStored{Farm: farm}, nil
	},
	EventFarmUpdated: func(fields interface{}, path string) (Event, error) {
		farm, err := decodePayload(fields, path, "farm", DecodeFarm)
		if err != nil {
			return nil, err
		}
		return &FarmUpdated{Farm: farm}, nil
	},
	EventFarmDeleted: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &FarmDeleted{FarmID: r.uint32(0, "farm_id")}
		return out, r.Err()
	},
	EventNodeStored: func(fields interface{}, path string) (Event, error) {
		node, err := decodePayload(fields, path, "node", DecodeNode)
		if err != nil {
			return nil, err
		}
		return &NodeStored{Node: node}, nil
	},
	EventNodeUpdated: func(fields interface{}, path string) (Event, error) {
		node, err := decodePayload(fields, path, "node", DecodeNode)
		if err != nil {
			return nil, err
		}
		return &NodeUpdated{Node: node}, nil
	},
	EventNodeDeleted: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &NodeDeleted{NodeID: r.uint32(0, "node_id")}
		return out, r.Err()
	},
	EventNodeUptimeReported: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &NodeUptimeReported{
			NodeID:    r.uint32(0, "node_id"),
			Timestamp: r.uint64(1, "now"),
			Uptime:    r.uint64(2, "uptime"),
		}
		return out, r.Err()
	},
	EventNodeCertificationSet: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &NodeCertificationSet{NodeID: r.uint32(0, "node_id")}
		out.Certification = decodeFieldAt(r, 1, "certification", DecodeNodeCertification)
		return out, r.Err()
	},
	EventFarmCertificationSet: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &FarmCertificationSet{FarmID: r.uint32(0, "farm_id")}
		out.Certification = decodeFieldAt(r, 1, "certification", DecodeFarmCertification)
		return out, r.Err()
	},

	EventMintTransactionProposed: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &MintTransactionProposed{
			TxID:   r.string(0, "tx_id"),
			Target: r.hash32(1, "target"),
			Amount: r.uint64(2, "amount"),
		}
		return out, r.Err()
	},
	EventMintTransactionVoted: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &MintTransactionVoted{TxID: r.string(0, "tx_id")}
		return out, r.Err()
	},
	EventMintCompleted: func(fields interface{}, path string) (Event, error) {
		mint, err := decodePayload(fields, path, "mint_transaction", DecodeMintTransaction)
		if err != nil {
			return nil, err
		}
		return &MintCompleted{MintTransaction: mint}, nil
	},
	EventMintTransactionExpired: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &MintTransactionExpired{
			TxID:   r.string(0, "tx_id"),
			Amount: r.uint64(1, "amount"),
			Target: r.hash32(2, "target"),
		}
		return out, r.Err()
	},
	EventRefundTransactionCreated: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &RefundTransactionCreated{
			TxHash: r.string(0, "tx_hash"),
			Target: r.string(1, "target"),
			Amount: r.uint64(2, "amount"),
		}
		return out, r.Err()
	},
	EventRefundTransactionSignatureAdded: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &RefundTransactionSignatureAdded{
			TxHash:        r.string(0, "tx_hash"),
			Signature:     r.bytes(1, "signature"),
			StellarPubKey: r.bytes(2, "stellar_pub_key"),
			Validator:     r.hash32(3, "validator"),
		}
		return out, r.Err()
	},
	EventRefundTransactionReady: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &RefundTransactionReady{TxHash: r.string(0, "tx_hash")}
		return out, r.Err()
	},
	EventRefundTransactionProcessed: func(fields interface{}, path string) (Event, error) {
		refund, err := decodePayload(fields, path, "refund_transaction", DecodeRefundTransaction)
		if err != nil {
			return nil, err
		}
		return &RefundTransactionProcessed{RefundTransaction: refund}, nil
	},
	EventRefundTransactionExpired: func(fields interface{}, path string) (Event, error) {
		r := newFieldReader(fields, path)
		out := &RefundTransactionExpired{
			TxHash: r.string(0, "tx_hash"),
			Target: r.string(1, "target"),
			Amount: r.uint64(2, "amount"),
		}
		return out, r.Err()
	},
}

func decodePayload[T any](fields interface{}, path, key string, decode func(raw interface{}, path string) (T, error)) (out T, err error) {
	raw, err := variant.FieldAt(fields, 0, key, path)
	if err != nil {
		return
	}
	return decode(raw, variant.Join(path, key))
}

func decodeContractPayload(fields interface{}, path string) (*Contract, error) {
	return decodePayload(fields, path, "contract", DecodeContract)
}

func decodeDeploymentPayload(fields interface{}, path string) (*Deployment, error) {
	return decodePayload(fields, path, "deployment", DecodeDeployment)
}
