package grid

import (
	"context"
	"sync"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/gammazero/workerpool"
)

// Parallel storage reads done by GetMany
const fetchWorkers = 8

type NodeRepository struct {
	repository
}

func nodeArgs(input *model.NodeInput) substrate.Args {
	interfaces := input.Interfaces
	if interfaces == nil {
		interfaces = []model.Interface{}
	}
	return substrate.NewArgs().
		With("farm_id", input.FarmID).
		With("resources", input.Resources).
		With("location", input.Location).
		With("interfaces", interfaces).
		With("secure_boot", input.SecureBoot).
		With("virtualized", input.Virtualized).
		With("serial_number", input.Serial)
}

// twinID is the signer's twin, required before registering a node
func (self *NodeRepository) twinID(ctx context.Context, signer *identity.Identity) (out uint32, err error) {
	id, err := self.queryID32(ctx, palletGrid, "TwinIdByAccountID", signer.AccountID())
	if err != nil {
		return
	}
	if !id.HasValue {
		err = ErrTwinNotFound
		return
	}
	return id.AsValue, nil
}

// Create registers the signer's twin as a node. A twin runs at most one node, an existing one is returned as is.
func (self *NodeRepository) Create(ctx context.Context, signer *identity.Identity, input *model.NodeInput) (id uint32, err error) {
	twinID, err := self.twinID(ctx, signer)
	if err != nil {
		return
	}

	log := self.log.WithField("twin_id", twinID).WithField("farm_id", input.FarmID)

	existing, err := self.IDByTwinID(ctx, twinID)
	if err != nil {
		return
	}
	if existing.HasValue {
		var node *model.Node
		node, err = self.Get(ctx, existing.AsValue)
		if err != nil {
			return
		}
		// A twin runs a single node, it can't be moved by creating it again
		if node.FarmID != input.FarmID {
			err = validationError("twin %d already runs node %d in farm %d, not in farm %d",
				twinID, existing.AsValue, node.FarmID, input.FarmID)
			return
		}
		self.idempotentHit(log, uint64(existing.AsValue))
		return existing.AsValue, nil
	}

	_, err = self.submitter.Submit(ctx, signer, ErrNodeCreationFailed, palletGrid, "create_node", nodeArgs(input))
	if err != nil {
		return
	}

	created, err := self.IDByTwinID(ctx, twinID)
	if err != nil {
		return
	}
	if !created.HasValue {
		self.report.Errors.CorrelationFailures.Inc()
		err = correlationError(ErrNodeCreationFailed)
		return
	}

	self.report.State.ResolvedIds.Inc()
	log.WithField("node_id", created.AsValue).Info("Node created")
	return created.AsValue, nil
}

func (self *NodeRepository) Update(ctx context.Context, signer *identity.Identity, nodeID uint32, input *model.NodeInput) (err error) {
	args := append(substrate.NewArgs().With("node_id", nodeID), nodeArgs(input)...)

	_, err = self.submitter.Submit(ctx, signer, ErrNodeUpdateFailed, palletGrid, "update_node", args)
	if err != nil {
		return
	}

	self.log.WithField("node_id", nodeID).Info("Node updated")
	return
}

func (self *NodeRepository) ReportUptime(ctx context.Context, signer *identity.Identity, uptime uint64) (err error) {
	_, err = self.submitter.Submit(ctx, signer, ErrNodeUptimeReportFailed, palletGrid, "report_uptime",
		substrate.NewArgs().With("uptime", uptime))
	return
}

func (self *NodeRepository) SetCertification(ctx context.Context, signer *identity.Identity, nodeID uint32, certification model.NodeCertification) (err error) {
	if certification.Validate() != nil {
		return validationError("node certification has to be either Diy or Certified")
	}

	_, err = self.submitter.Submit(ctx, signer, ErrNodeCertificationFailed, palletGrid, "set_node_certification",
		substrate.NewArgs().
			With("node_id", nodeID).
			With("node_certification", certification))
	if err != nil {
		return
	}

	self.log.WithField("node_id", nodeID).WithField("certification", certification).Info("Node certification set")
	return
}

func (self *NodeRepository) Get(ctx context.Context, id uint32) (out *model.Node, err error) {
	raw, err := self.query(ctx, palletGrid, "Nodes", id)
	if err != nil {
		return
	}
	if raw == nil {
		err = ErrNodeNotFound
		return
	}
	out, err = model.DecodeNode(raw, "Node")
	return out, self.decoded(err)
}

// GetMany reads nodes in parallel, keeping the order of ids. The first failure is returned.
func (self *NodeRepository) GetMany(ctx context.Context, ids []uint32) (out []*model.Node, err error) {
	var mtx sync.Mutex
	out = make([]*model.Node, len(ids))

	workers := workerpool.New(fetchWorkers)
	for idx, id := range ids {
		idx, id := idx, id
		workers.Submit(func() {
			node, getErr := self.Get(ctx, id)

			mtx.Lock()
			defer mtx.Unlock()
			if getErr != nil {
				if err == nil {
					err = getErr
				}
				return
			}
			out[idx] = node
		})
	}
	workers.StopWait()

	if err != nil {
		return nil, err
	}
	return
}

func (self *NodeRepository) IDByTwinID(ctx context.Context, twinID uint32) (variant.Option[uint32], error) {
	return self.queryID32(ctx, palletGrid, "NodeIdByTwinID", twinID)
}

func (self *NodeRepository) IDsByFarmID(ctx context.Context, farmID uint32) (out []uint32, err error) {
	raw, err := self.query(ctx, palletGrid, "NodesByFarmID", farmID)
	if err != nil {
		return
	}

	items, err := variant.Slice(raw, "NodesByFarmID")
	if err != nil {
		return nil, self.decoded(err)
	}

	out = make([]uint32, 0, len(items))
	for _, item := range items {
		var id uint32
		id, err = variant.Uint32(item, "NodesByFarmID")
		if err != nil {
			return nil, self.decoded(err)
		}
		out = append(out, id)
	}
	return
}

// LastID is the id assigned to the most recently created node
func (self *NodeRepository) LastID(ctx context.Context) (out uint32, err error) {
	id, err := self.queryID32(ctx, palletGrid, "NodeID")
	if err != nil {
		return
	}
	return id.Or(0), nil
}
