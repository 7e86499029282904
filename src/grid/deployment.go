package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
)

type DeploymentRepository struct {
	repository
}

// Create places a deployment on a capacity reservation. Deployments have no natural key, every call creates a new one.
func (self *DeploymentRepository) Create(ctx context.Context, signer *identity.Identity, capacityReservationID uint64, hash, data string, resources model.Resources, publicIPs uint32) (id uint64, err error) {
	padded, err := PadHash(hash)
	if err != nil {
		return
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrDeploymentCreationFailed, palletContract, "deployment_create",
		substrate.NewArgs().
			With("capacity_reservation_contract_id", capacityReservationID).
			With("hash", padded).
			With("data", data).
			With("resources", resources).
			With("public_ips", publicIPs))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventDeploymentCreated, ErrDeploymentCreationFailed)
	if err != nil {
		return
	}

	self.log.WithField("deployment_id", id).Info("Deployment created")
	return
}

func (self *DeploymentRepository) Update(ctx context.Context, signer *identity.Identity, deploymentID uint64, hash, data string, resources model.Resources) (id uint64, err error) {
	padded, err := PadHash(hash)
	if err != nil {
		return
	}

	outcome, err := self.submitter.Submit(ctx, signer, ErrDeploymentUpdateFailed, palletContract, "deployment_update",
		substrate.NewArgs().
			With("id", deploymentID).
			With("hash", padded).
			With("data", data).
			With("resources", resources))
	if err != nil {
		return
	}

	id, err = self.correlator.ResolveID(ctx, outcome, model.EventDeploymentUpdated, ErrDeploymentUpdateFailed)
	if err != nil {
		return
	}

	self.log.WithField("deployment_id", id).Info("Deployment updated")
	return
}

func (self *DeploymentRepository) Cancel(ctx context.Context, signer *identity.Identity, deploymentID uint64) (err error) {
	_, err = self.submitter.Submit(ctx, signer, ErrDeploymentCancelFailed, palletContract, "deployment_cancel",
		substrate.NewArgs().With("id", deploymentID))
	if err != nil {
		return
	}

	self.log.WithField("deployment_id", deploymentID).Info("Deployment canceled")
	return
}

func (self *DeploymentRepository) Get(ctx context.Context, id uint64) (out *model.Deployment, err error) {
	raw, err := self.query(ctx, palletContract, "Deployments", id)
	if err != nil {
		return
	}
	if raw == nil {
		err = ErrDeploymentNotFound
		return
	}
	out, err = model.DecodeDeployment(raw, "Deployment")
	return out, self.decoded(err)
}
