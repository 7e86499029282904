package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type ContractRepository struct {
	repository
}

// CreateNodeContract returns the id of the node contract for (nodeID, hash), creating it if needed
func (self *ContractRepository) CreateNodeContract(ctx context.Context, signer *identity.Identity, nodeID uint32, hash, data string, publicIPs uint32, solutionProviderID variant.Option[uint64]) (id uint64, err error) {
	padded, err := PadHash(hash)
	if err != nil {
		return
	}

	log := self.log.WithField("node_id", nodeID).WithField("hash", hash)

	existing, err := self.queryID(ctx, palletContract, "ContractIDByNodeIDAndHash", nodeID, padded)
	if err != nil {
		return
	}
	if existing.HasValue {
		self.idempotentHit(log, existing.AsValue)
		return existing.AsValue, nil
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrContractCreationFailed, palletContract, "create_node_contract",
		substrate.NewArgs().
			With("node_id", nodeID).
			With("deployment_hash", padded).
			With("deployment_data", data).
			With("public_ips", publicIPs).
			With("solution_provider_id", solutionProviderID))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventContractCreated, ErrContractCreationFailed)
	if err != nil {
		return
	}

	log.WithField("contract_id", id).Info("Node contract created")
	return
}

// UpdateNodeContract changes the deployment a node contract points to
func (self *ContractRepository) UpdateNodeContract(ctx context.Context, signer *identity.Identity, contractID uint64, hash, data string) (id uint64, err error) {
	padded, err := PadHash(hash)
	if err != nil {
		return
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrContractUpdateFailed, palletContract, "update_node_contract",
		substrate.NewArgs().
			With("contract_id", contractID).
			With("deployment_hash", padded).
			With("deployment_data", data))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventContractUpdated, ErrContractUpdateFailed)
	if err != nil {
		return
	}

	self.log.WithField("contract_id", id).Info("Node contract updated")
	return
}

// CreateNameContract returns the id of the contract registering the name, creating it if needed
func (self *ContractRepository) CreateNameContract(ctx context.Context, signer *identity.Identity, name string) (id uint64, err error) {
	log := self.log.WithField("name", name)

	existing, err := self.IDByName(ctx, name)
	if err != nil {
		return
	}
	if existing.HasValue {
		self.idempotentHit(log, existing.AsValue)
		return existing.AsValue, nil
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrContractCreationFailed, palletContract, "create_name_contract",
		substrate.NewArgs().With("name", name))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventContractCreated, ErrContractCreationFailed)
	if err != nil {
		return
	}

	log.WithField("contract_id", id).Info("Name contract created")
	return
}

// CreateRentContract returns the id of the active rent contract of the node, creating it if needed
func (self *ContractRepository) CreateRentContract(ctx context.Context, signer *identity.Identity, nodeID uint32, solutionProviderID variant.Option[uint64]) (id uint64, err error) {
	log := self.log.WithField("node_id", nodeID)

	existing, err := self.RentContractIDForNode(ctx, nodeID)
	if err != nil {
		return
	}
	if existing.HasValue {
		self.idempotentHit(log, existing.AsValue)
		return existing.AsValue, nil
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrContractCreationFailed, palletContract, "create_rent_contract",
		substrate.NewArgs().
			With("node_id", nodeID).
			With("solution_provider_id", solutionProviderID))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventContractCreated, ErrContractCreationFailed)
	if err != nil {
		return
	}

	log.WithField("contract_id", id).Info("Rent contract created")
	return
}

// CreateCapacityReservationContract reserves capacity in the farm according to the policy.
// There's no natural key for a reservation, so every call submits a new one.
func (self *ContractRepository) CreateCapacityReservationContract(ctx context.Context, signer *identity.Identity, farmID uint32, policy model.CapacityReservationPolicy, solutionProviderID variant.Option[uint64]) (id uint64, err error) {
	err = policy.Validate()
	if err != nil {
		return 0, validationError("%s", err)
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrCapacityReservationCreationFailed, palletContract, "capacity_reservation_contract_create",
		substrate.NewArgs().
			With("farm_id", farmID).
			With("policy", policy).
			With("solution_provider_id", solutionProviderID))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventContractCreated, ErrCapacityReservationCreationFailed)
	if err != nil {
		return
	}

	self.log.WithField("farm_id", farmID).
		WithField("policy", policy.String()).
		WithField("contract_id", id).
		Info("Capacity reservation contract created")
	return
}

// UpdateCapacityReservationContract changes the resources held by the reservation
func (self *ContractRepository) UpdateCapacityReservationContract(ctx context.Context, signer *identity.Identity, contractID uint64, resources model.Resources) (id uint64, err error) {
	outcome, err := self.submitter.Submit(ctx, signer, ErrCapacityReservationUpdateFailed, palletContract, "capacity_reservation_contract_update",
		substrate.NewArgs().
			With("capacity_reservation_id", contractID).
			With("resources", resources))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventContractUpdated, ErrCapacityReservationUpdateFailed)
	if err != nil {
		return
	}

	self.log.WithField("contract_id", id).Info("Capacity reservation contract updated")
	return
}

// Cancel requests the Deleted(CanceledByUser) state. Billing decides when it's applied.
func (self *ContractRepository) Cancel(ctx context.Context, signer *identity.Identity, contractID uint64) (err error) {
	_, err = self.submitter.Submit(ctx, signer, ErrContractCancelFailed, palletContract, "cancel_contract",
		substrate.NewArgs().With("contract_id", contractID))
	if err != nil {
		return
	}

	self.log.WithField("contract_id", contractID).Info("Contract canceled")
	return
}

// ReportResources sends resources used by contracts, as reported by the node running them
func (self *ContractRepository) ReportResources(ctx context.Context, signer *identity.Identity, resources []model.ContractResources) (err error) {
	if resources == nil {
		resources = []model.ContractResources{}
	}

	_, err = self.submitter.Submit(ctx, signer, ErrConsumptionReportFailed, palletContract, "report_contract_resources",
		substrate.NewArgs().With("contract_resources", resources))
	return
}

func (self *ContractRepository) Get(ctx context.Context, id uint64) (out *model.Contract, err error) {
	raw, err := self.query(ctx, palletContract, "Contracts", id)
	if err != nil {
		return
	}
	if raw == nil {
		err = ErrContractNotFound
		return
	}
	out, err = model.DecodeContract(raw, "Contract")
	return out, self.decoded(err)
}

func (self *ContractRepository) IDByName(ctx context.Context, name string) (variant.Option[uint64], error) {
	return self.queryID(ctx, palletContract, "ContractIDByNameRegistration", []byte(name))
}

func (self *ContractRepository) IDByNodeIDAndHash(ctx context.Context, nodeID uint32, hash string) (out variant.Option[uint64], err error) {
	padded, err := PadHash(hash)
	if err != nil {
		return
	}
	return self.queryID(ctx, palletContract, "ContractIDByNodeIDAndHash", nodeID, padded)
}

func (self *ContractRepository) RentContractIDForNode(ctx context.Context, nodeID uint32) (variant.Option[uint64], error) {
	return self.queryID(ctx, palletContract, "ActiveRentContractForNode", nodeID)
}

// ActiveNodeContracts lists ids of node contracts running on the node
func (self *ContractRepository) ActiveNodeContracts(ctx context.Context, nodeID uint32) (out []uint64, err error) {
	raw, err := self.query(ctx, palletContract, "ActiveNodeContracts", nodeID)
	if err != nil {
		return
	}

	items, err := variant.Slice(raw, "ActiveNodeContracts")
	if err != nil {
		return nil, self.decoded(err)
	}

	out = make([]uint64, 0, len(items))
	for _, item := range items {
		var id uint64
		id, err = variant.Uint64(item, "ActiveNodeContracts")
		if err != nil {
			return nil, self.decoded(err)
		}
		out = append(out, id)
	}
	return
}
