package grid

import (
	"github.com/warp-contracts/gridclient/src/utils/activation"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/logger"
	monitor_grid "github.com/warp-contracts/gridclient/src/utils/monitoring/grid"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
)

// Manager wires repositories of all entity families around one long lived chain link.
// The link is owned by the caller and closed by it.
type Manager struct {
	link      substrate.Link
	monitor   *monitor_grid.Monitor
	submitter *Submitter

	// Serializes whole operations per identity, see identity.Locker
	Locker *identity.Locker

	Account    *AccountRepository
	Twin       *TwinRepository
	Farm       *FarmRepository
	Node       *NodeRepository
	Contract   *ContractRepository
	Deployment *DeploymentRepository
	Bridge     *BridgeRepository
}

func NewManager(link substrate.Link) (self *Manager) {
	self = new(Manager)
	self.link = link
	self.monitor = monitor_grid.NewMonitor()
	self.Locker = identity.NewLocker()

	report := self.monitor.GetReport().Grid
	self.submitter = NewSubmitter(link, report)
	correlator := NewCorrelator(link, report)

	base := func(tag string) repository {
		return repository{
			log:        logger.NewSublogger(tag),
			link:       link,
			submitter:  self.submitter,
			correlator: correlator,
			report:     report,
		}
	}

	self.Account = &AccountRepository{repository: base("account")}
	self.Twin = &TwinRepository{repository: base("twin")}
	self.Farm = &FarmRepository{repository: base("farm")}
	self.Node = &NodeRepository{repository: base("node")}
	self.Contract = &ContractRepository{repository: base("contract")}
	self.Deployment = &DeploymentRepository{repository: base("deployment")}
	self.Bridge = &BridgeRepository{repository: base("bridge")}
	return
}

// WithActivation enables Account.Activate
func (self *Manager) WithActivation(client *activation.Client) *Manager {
	self.Account.activation = client
	return self
}

func (self *Manager) Monitor() *monitor_grid.Monitor {
	return self.monitor
}

func (self *Manager) Link() substrate.Link {
	return self.link
}
