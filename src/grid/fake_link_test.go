package grid

import (
	"context"
	"fmt"
	"sync"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
)

type submission struct {
	extrinsic     *substrate.SignedExtrinsic
	waitIncluded  bool
	waitFinalized bool
}

// fakeLink is an in-memory chain. Storage is keyed by item and keys, submissions are answered by handler.
type fakeLink struct {
	mtx sync.Mutex

	storage   map[string]interface{}
	composed  []*substrate.Call
	submitted []submission

	// Scripts the outcome of a submission, may change storage. Nil means success without events.
	handler func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error)
}

func newFakeLink() *fakeLink {
	return &fakeLink{storage: make(map[string]interface{})}
}

func storageKey(pallet, item string, keys ...interface{}) string {
	return fmt.Sprintf("%s.%s%v", pallet, item, keys)
}

func (self *fakeLink) set(value interface{}, pallet, item string, keys ...interface{}) {
	self.storage[storageKey(pallet, item, keys...)] = value
}

func (self *fakeLink) Query(ctx context.Context, pallet, item string, keys ...interface{}) (interface{}, error) {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	return self.storage[storageKey(pallet, item, keys...)], nil
}

func (self *fakeLink) ComposeCall(ctx context.Context, pallet, function string, args substrate.Args) (*substrate.Call, error) {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	call := &substrate.Call{Pallet: pallet, Function: function, Args: args}
	self.composed = append(self.composed, call)
	return call, nil
}

func (self *fakeLink) SignExtrinsic(ctx context.Context, call *substrate.Call, signer *identity.Identity) (*substrate.SignedExtrinsic, error) {
	return &substrate.SignedExtrinsic{Call: call, Signer: signer}, nil
}

func (self *fakeLink) Submit(ctx context.Context, extrinsic *substrate.SignedExtrinsic, waitIncluded, waitFinalized bool) (*substrate.CallOutcome, error) {
	self.mtx.Lock()
	self.submitted = append(self.submitted, submission{extrinsic: extrinsic, waitIncluded: waitIncluded, waitFinalized: waitFinalized})
	handler := self.handler
	self.mtx.Unlock()

	if handler == nil {
		return success(extrinsic.Signer), nil
	}

	// Handlers mutate storage
	self.mtx.Lock()
	defer self.mtx.Unlock()
	return handler(extrinsic.Call, extrinsic.Signer)
}

func (self *fakeLink) Close() {}

func (self *fakeLink) submissions() int {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	return len(self.submitted)
}

func (self *fakeLink) lastCall() *substrate.Call {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	if len(self.submitted) == 0 {
		return nil
	}
	return self.submitted[len(self.submitted)-1].extrinsic.Call
}

func success(signer *identity.Identity, events ...substrate.RawEvent) *substrate.CallOutcome {
	return &substrate.CallOutcome{
		Success:     true,
		BlockNumber: 100,
		Events:      events,
		Identity:    signer,
	}
}

func failure(signer *identity.Identity, message string) *substrate.CallOutcome {
	return &substrate.CallOutcome{
		Success:      false,
		ErrorMessage: message,
		BlockNumber:  100,
		Identity:     signer,
	}
}

func event(pallet, name string, fields interface{}) substrate.RawEvent {
	return substrate.RawEvent{
		Phase:  map[string]interface{}{"ApplyExtrinsic": uint64(1)},
		Pallet: pallet,
		Name:   name,
		Fields: fields,
	}
}

func rawContract(id uint64, twinID uint32, state interface{}, contractType map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"version":              uint64(4),
		"state":                state,
		"contract_id":          id,
		"twin_id":              uint64(twinID),
		"contract_type":        contractType,
		"solution_provider_id": nil,
	}
}

func nameContractType(name string) map[string]interface{} {
	return map[string]interface{}{"NameContract": map[string]interface{}{"name": []byte(name)}}
}

func nodeContractType(nodeID uint32, hash [32]byte, data string) map[string]interface{} {
	return map[string]interface{}{"NodeContract": map[string]interface{}{
		"node_id":         uint64(nodeID),
		"deployment_hash": hash[:],
		"deployment_data": []byte(data),
		"public_ips":      uint64(0),
		"public_ips_list": []interface{}{},
	}}
}

func rentContractType(nodeID uint32) map[string]interface{} {
	return map[string]interface{}{"RentContract": map[string]interface{}{"node_id": uint64(nodeID)}}
}

func rawDeployment(id uint64, twinID uint32) map[string]interface{} {
	return map[string]interface{}{
		"id":                      id,
		"twin_id":                 uint64(twinID),
		"capacity_reservation_id": uint64(7),
		"deployment_hash":         make([]byte, 32),
		"deployment_data":         []byte("{}"),
		"public_ips_count":        uint64(0),
		"public_ips":              []interface{}{},
		"resources": map[string]interface{}{
			"hru": uint64(1), "sru": uint64(2), "cru": uint64(3), "mru": uint64(4),
		},
	}
}
