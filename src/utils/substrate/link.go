package substrate

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/identity"
)

// Link is the RPC and codec layer of the chain. Values returned by Query and carried by events
// are generic trees, see package variant for their shape.
type Link interface {
	// Reads a storage item. Returns nil when the chain holds no value under the keys.
	Query(ctx context.Context, pallet, item string, keys ...interface{}) (interface{}, error)

	// Builds a call. Arguments are encoded in the given order.
	ComposeCall(ctx context.Context, pallet, function string, args Args) (*Call, error)

	// Signs the call with the identity's key pair and its current nonce
	SignExtrinsic(ctx context.Context, call *Call, signer *identity.Identity) (*SignedExtrinsic, error)

	// Broadcasts the extrinsic, optionally waiting for it to be included and finalized
	Submit(ctx context.Context, extrinsic *SignedExtrinsic, waitIncluded, waitFinalized bool) (*CallOutcome, error)

	Close()
}

type Arg struct {
	Name  string
	Value interface{}
}

// Ordered call arguments
type Args []Arg

func NewArgs() Args {
	return Args{}
}

func (self Args) With(name string, value interface{}) Args {
	return append(self, Arg{Name: name, Value: value})
}

// Get returns the argument with the given name
func (self Args) Get(name string) (value interface{}, ok bool) {
	for _, a := range self {
		if a.Name == name {
			return a.Value, true
		}
	}
	return
}

// Call is composed fresh for every submission and never reused
type Call struct {
	Pallet   string
	Function string
	Args     Args

	// Implementation specific encoded form
	encoded interface{}
}

func (self *Call) Name() string {
	return self.Pallet + "." + self.Function
}

type SignedExtrinsic struct {
	Call   *Call
	Signer *identity.Identity

	encoded interface{}
}

// RawEvent is a single event record emitted in the block that included a submission
type RawEvent struct {
	// Phase as a value tree: {"ApplyExtrinsic": index}, "Finalization" or "Initialization"
	Phase  interface{}
	Pallet string
	Name   string

	// Event payload as a value tree
	Fields interface{}
	Topics [][32]byte
}

func (self *RawEvent) Kind() string {
	return self.Pallet + "." + self.Name
}

// CallOutcome is produced once per submission and consumed by the operation that submitted it
type CallOutcome struct {
	Success      bool
	ErrorMessage string

	BlockHash   [32]byte
	BlockNumber uint64

	// Events emitted by the submitted extrinsic
	Events []RawEvent

	Identity *identity.Identity
}
