package model

type ExtrinsicSuccess struct{}

func (self *ExtrinsicSuccess) Kind() EventKind { return EventExtrinsicSuccess }

type ExtrinsicFailed struct {
	// Value tree of the runtime's DispatchError
	DispatchError interface{}
}

func (self *ExtrinsicFailed) Kind() EventKind { return EventExtrinsicFailed }

type ContractCreated struct {
	Contract *Contract
}

func (self *ContractCreated) Kind() EventKind     { return EventContractCreated }
func (self *ContractCreated) OwnerTwinID() uint32 { return self.Contract.TwinID }
func (self *ContractCreated) EntityID() uint64    { return self.Contract.ContractID }

type ContractUpdated struct {
	Contract *Contract
}

func (self *ContractUpdated) Kind() EventKind     { return EventContractUpdated }
func (self *ContractUpdated) OwnerTwinID() uint32 { return self.Contract.TwinID }
func (self *ContractUpdated) EntityID() uint64    { return self.Contract.ContractID }

type NodeContractCanceled struct {
	ContractID uint64
	NodeID     uint32
	TwinID     uint32
}

func (self *NodeContractCanceled) Kind() EventKind     { return EventNodeContractCanceled }
func (self *NodeContractCanceled) OwnerTwinID() uint32 { return self.TwinID }
func (self *NodeContractCanceled) EntityID() uint64    { return self.ContractID }

type NameContractCanceled struct {
	ContractID uint64
}

func (self *NameContractCanceled) Kind() EventKind { return EventNameContractCanceled }

type RentContractCanceled struct {
	ContractID uint64
}

func (self *RentContractCanceled) Kind() EventKind { return EventRentContractCanceled }

type ContractGracePeriodStarted struct {
	ContractID  uint64
	NodeID      uint32
	TwinID      uint32
	BlockNumber uint64
}

func (self *ContractGracePeriodStarted) Kind() EventKind     { return EventContractGracePeriodStarted }
func (self *ContractGracePeriodStarted) OwnerTwinID() uint32 { return self.TwinID }
func (self *ContractGracePeriodStarted) EntityID() uint64    { return self.ContractID }

type ContractGracePeriodEnded struct {
	ContractID uint64
	NodeID     uint32
	TwinID     uint32
}

func (self *ContractGracePeriodEnded) Kind() EventKind     { return EventContractGracePeriodEnded }
func (self *ContractGracePeriodEnded) OwnerTwinID() uint32 { return self.TwinID }
func (self *ContractGracePeriodEnded) EntityID() uint64    { return self.ContractID }

type DeploymentCreated struct {
	Deployment *Deployment
}

func (self *DeploymentCreated) Kind() EventKind     { return EventDeploymentCreated }
func (self *DeploymentCreated) OwnerTwinID() uint32 { return self.Deployment.TwinID }
func (self *DeploymentCreated) EntityID() uint64    { return self.Deployment.ID }

type DeploymentUpdated struct {
	Deployment *Deployment
}

func (self *DeploymentUpdated) Kind() EventKind     { return EventDeploymentUpdated }
func (self *DeploymentUpdated) OwnerTwinID() uint32 { return self.Deployment.TwinID }
func (self *DeploymentUpdated) EntityID() uint64    { return self.Deployment.ID }

type DeploymentCanceled struct {
	DeploymentID          uint64
	TwinID                uint32
	NodeID                uint32
	CapacityReservationID uint64
}

func (self *DeploymentCanceled) Kind() EventKind     { return EventDeploymentCanceled }
func (self *DeploymentCanceled) OwnerTwinID() uint32 { return self.TwinID }
func (self *DeploymentCanceled) EntityID() uint64    { return self.DeploymentID }

type TwinStored struct {
	Twin *Twin
}

func (self *TwinStored) Kind() EventKind { return EventTwinStored }

type TwinUpdated struct {
	Twin *Twin
}

func (self *TwinUpdated) Kind() EventKind { return EventTwinUpdated }

type TwinDeleted struct {
	TwinID uint32
}

func (self *TwinDeleted) Kind() EventKind { return EventTwinDeleted }

type FarmStored struct {
	Farm *Farm
}

func (self *FarmStored) Kind() EventKind { return EventFarmStored }

type FarmUpdated struct {
	Farm *Farm
}

func (self *FarmUpdated) Kind() EventKind { return EventFarmUpdated }

type FarmDeleted struct {
	FarmID uint32
}

func (self *FarmDeleted) Kind() EventKind { return EventFarmDeleted }

type NodeStored struct {
	Node *Node
}

func (self *NodeStored) Kind() EventKind { return EventNodeStored }

type NodeUpdated struct {
	Node *Node
}

func (self *NodeUpdated) Kind() EventKind { return EventNodeUpdated }

type NodeDeleted struct {
	NodeID uint32
}

func (self *NodeDeleted) Kind() EventKind { return EventNodeDeleted }

type NodeUptimeReported struct {
	NodeID    uint32
	Timestamp uint64
	Uptime    uint64
}

func (self *NodeUptimeReported) Kind() EventKind { return EventNodeUptimeReported }

type NodeCertificationSet struct {
	NodeID        uint32
	Certification NodeCertification
}

func (self *NodeCertificationSet) Kind() EventKind { return EventNodeCertificationSet }

type FarmCertificationSet struct {
	FarmID        uint32
	Certification FarmCertification
}

func (self *FarmCertificationSet) Kind() EventKind { return EventFarmCertificationSet }

type MintTransactionProposed struct {
	TxID   string
	Target [32]byte
	Amount uint64
}

func (self *MintTransactionProposed) Kind() EventKind { return EventMintTransactionProposed }

type MintTransactionVoted struct {
	TxID string
}

func (self *MintTransactionVoted) Kind() EventKind { return EventMintTransactionVoted }

type MintCompleted struct {
	MintTransaction *MintTransaction
}

func (self *MintCompleted) Kind() EventKind { return EventMintCompleted }

type MintTransactionExpired struct {
	TxID   string
	Amount uint64
	Target [32]byte
}

func (self *MintTransactionExpired) Kind() EventKind { return EventMintTransactionExpired }

type RefundTransactionCreated struct {
	TxHash string
	Target string
	Amount uint64
}

func (self *RefundTransactionCreated) Kind() EventKind { return EventRefundTransactionCreated }

type RefundTransactionSignatureAdded struct {
	TxHash        string
	Signature     []byte
	StellarPubKey []byte
	Validator     [32]byte
}

func (self *RefundTransactionSignatureAdded) Kind() EventKind {
	return EventRefundTransactionSignatureAdded
}

type RefundTransactionReady struct {
	TxHash string
}

func (self *RefundTransactionReady) Kind() EventKind { return EventRefundTransactionReady }

type RefundTransactionProcessed struct {
	RefundTransaction *RefundTransaction
}

func (self *RefundTransactionProcessed) Kind() EventKind { return EventRefundTransactionProcessed }

type RefundTransactionExpired struct {
	TxHash string
	Target string
	Amount uint64
}

func (self *RefundTransactionExpired) Kind() EventKind { return EventRefundTransactionExpired }

// GenericEvent is a known event kind whose payload is kept as a value tree
type GenericEvent struct {
	EventKind EventKind
	Fields    interface{}
}

func (self *GenericEvent) Kind() EventKind { return self.EventKind }

// UnknownEvent comes from a pallet or runtime version this package doesn't describe
type UnknownEvent struct {
	Pallet string
	Name   string
	Fields interface{}
}

func (self *UnknownEvent) Kind() EventKind { return EventKind(self.Pallet + "." + self.Name) }
