package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type FarmRepository struct {
	repository
}

// Create returns the id of the farm with the given name, creating it if needed
func (self *FarmRepository) Create(ctx context.Context, signer *identity.Identity, name string, publicIPs []model.PublicIPInput) (id uint32, err error) {
	log := self.log.WithField("name", name)

	existing, err := self.IDByName(ctx, name)
	if err != nil {
		return
	}
	if existing.HasValue {
		self.idempotentHit(log, uint64(existing.AsValue))
		return existing.AsValue, nil
	}

	if publicIPs == nil {
		publicIPs = []model.PublicIPInput{}
	}
	for _, ip := range publicIPs {
		err = validatePublicIP(ip)
		if err != nil {
			return
		}
	}

	_, err = self.submitter.Submit(ctx, signer, ErrFarmCreationFailed, palletGrid, "create_farm",
		substrate.NewArgs().
			With("name", name).
			With("public_ips", publicIPs))
	if err != nil {
		return
	}

	created, err := self.IDByName(ctx, name)
	if err != nil {
		return
	}
	if !created.HasValue {
		self.report.Errors.CorrelationFailures.Inc()
		err = correlationError(ErrFarmCreationFailed)
		return
	}

	self.report.State.ResolvedIds.Inc()
	log.WithField("farm_id", created.AsValue).Info("Farm created")
	return created.AsValue, nil
}

func (self *FarmRepository) Get(ctx context.Context, id uint32) (out *model.Farm, err error) {
	raw, err := self.query(ctx, palletGrid, "Farms", id)
	if err != nil {
		return
	}
	if raw == nil {
		err = ErrFarmNotFound
		return
	}
	out, err = model.DecodeFarm(raw, "Farm")
	return out, self.decoded(err)
}

func (self *FarmRepository) IDByName(ctx context.Context, name string) (variant.Option[uint32], error) {
	return self.queryID32(ctx, palletGrid, "FarmIdByName", []byte(name))
}
