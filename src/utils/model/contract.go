package model

import (
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type NodeContract struct {
	NodeID         uint32
	DeploymentHash [32]byte
	DeploymentData string
	PublicIPs      uint32
	PublicIPsList  []PublicIP
}

func decodeNodeContract(raw interface{}, path string) (out NodeContract, err error) {
	r := newReader(raw, path)
	out.NodeID = r.uint32("node_id")
	out.DeploymentHash = r.hash32("deployment_hash")
	out.DeploymentData = r.string("deployment_data")
	out.PublicIPs = r.uint32("public_ips")
	out.PublicIPsList = decodeList(r, "public_ips_list", DecodePublicIP)
	err = r.Err()
	return
}

type NameContract struct {
	Name string
}

type RentContract struct {
	NodeID uint32
}

// CapacityReservationContract holds capacity on a node, deployments are then placed inside it
type CapacityReservationContract struct {
	NodeID         uint32
	TotalResources Resources
	UsedResources  Resources
	GroupID        variant.Option[uint32]
	PublicIPs      uint32
	Deployments    []uint64
}

func decodeCapacityReservationContract(raw interface{}, path string) (out CapacityReservationContract, err error) {
	r := newReader(raw, path)
	out.NodeID = r.uint32("node_id")
	consumable := decodeField(r, "resources", decodeConsumableResources)
	out.TotalResources = consumable[0]
	out.UsedResources = consumable[1]
	out.GroupID = decodeOptionField(r, "group_id", decodeUint32)
	out.PublicIPs = r.uint32("public_ips")
	out.Deployments = decodeList(r, "deployments", decodeUint64)
	err = r.Err()
	return
}

// Total and used resources
func decodeConsumableResources(raw interface{}, path string) (out [2]Resources, err error) {
	r := newReader(raw, path)
	out[0] = decodeField(r, "total_resources", DecodeResources)
	out[1] = decodeField(r, "used_resources", DecodeResources)
	err = r.Err()
	return
}

// ContractType holds exactly one of the contract kinds. Payloads of the other kinds are zero filled.
type ContractType struct {
	IsNodeContract bool
	AsNodeContract NodeContract

	IsNameContract bool
	AsNameContract NameContract

	IsRentContract bool
	AsRentContract RentContract

	IsCapacityReservationContract bool
	AsCapacityReservationContract CapacityReservationContract
}

func emptyContractType() ContractType {
	return ContractType{
		AsNodeContract:                NodeContract{PublicIPsList: []PublicIP{}},
		AsCapacityReservationContract: CapacityReservationContract{Deployments: []uint64{}},
	}
}

func DecodeContractType(raw interface{}, path string) (out ContractType, err error) {
	out = emptyContractType()

	name, payload, err := variant.Expect(raw, path, "NodeContract", "NameContract", "RentContract", "CapacityReservationContract")
	if err != nil {
		return
	}

	at := variant.Join(path, name)
	switch name {
	case "NodeContract":
		out.IsNodeContract = true
		out.AsNodeContract, err = decodeNodeContract(payload, at)
	case "NameContract":
		out.IsNameContract = true
		r := newReader(payload, at)
		out.AsNameContract.Name = r.string("name")
		err = r.Err()
	case "RentContract":
		out.IsRentContract = true
		r := newReader(payload, at)
		out.AsRentContract.NodeID = r.uint32("node_id")
		err = r.Err()
	case "CapacityReservationContract":
		out.IsCapacityReservationContract = true
		out.AsCapacityReservationContract, err = decodeCapacityReservationContract(payload, at)
	}
	return
}

func (self ContractType) Validate() error {
	return variant.ExactlyOne("ContractType", self.IsNodeContract, self.IsNameContract, self.IsRentContract, self.IsCapacityReservationContract)
}

type DeletedCause struct {
	IsCanceledByUser bool
	IsOutOfFunds     bool
}

// ContractState is Created, GracePeriod (since block AsGracePeriod) or Deleted
type ContractState struct {
	IsCreated bool

	IsDeleted bool
	AsDeleted DeletedCause

	IsGracePeriod bool
	AsGracePeriod uint64
}

func DecodeContractState(raw interface{}, path string) (out ContractState, err error) {
	name, payload, err := variant.Expect(raw, path, "Created", "Deleted", "GracePeriod")
	if err != nil {
		return
	}

	at := variant.Join(path, name)
	switch name {
	case "Created":
		out.IsCreated = true
	case "Deleted":
		var cause string
		cause, _, err = variant.Expect(payload, at, "CanceledByUser", "OutOfFunds")
		if err != nil {
			return
		}
		out.IsDeleted = true
		out.AsDeleted.IsCanceledByUser = cause == "CanceledByUser"
		out.AsDeleted.IsOutOfFunds = cause == "OutOfFunds"
	case "GracePeriod":
		out.IsGracePeriod = true
		out.AsGracePeriod, err = variant.Uint64(payload, at)
	}
	return
}

func (self ContractState) Validate() (err error) {
	err = variant.ExactlyOne("ContractState", self.IsCreated, self.IsDeleted, self.IsGracePeriod)
	if err != nil || !self.IsDeleted {
		return
	}
	return variant.ExactlyOne("ContractState.Deleted", self.AsDeleted.IsCanceledByUser, self.AsDeleted.IsOutOfFunds)
}

func (self ContractState) String() string {
	switch {
	case self.IsCreated:
		return "Created"
	case self.IsGracePeriod:
		return "GracePeriod"
	case self.IsDeleted && self.AsDeleted.IsCanceledByUser:
		return "Deleted(CanceledByUser)"
	case self.IsDeleted:
		return "Deleted(OutOfFunds)"
	}
	return "Unknown"
}

type Contract struct {
	Version            uint32
	State              ContractState
	ContractID         uint64
	TwinID             uint32
	ContractType       ContractType
	SolutionProviderID variant.Option[uint64]
}

func DecodeContract(raw interface{}, path string) (out *Contract, err error) {
	r := newReader(raw, path)

	out = new(Contract)
	out.Version = r.uint32("version")
	out.State = decodeField(r, "state", DecodeContractState)
	out.ContractID = r.uint64("contract_id")
	out.TwinID = r.uint32("twin_id")
	out.ContractType = decodeField(r, "contract_type", DecodeContractType)
	out.SolutionProviderID = decodeOptionField(r, "solution_provider_id", decodeUint64)

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}

// ContractResources is a single entry of a resources report
type ContractResources struct {
	ContractID    uint64
	UsedResources Resources
}
