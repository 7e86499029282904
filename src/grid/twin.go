package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type TwinRepository struct {
	repository
}

// Create returns the identity's twin id, creating the twin if it doesn't exist yet
func (self *TwinRepository) Create(ctx context.Context, signer *identity.Identity, ip string) (id uint32, err error) {
	err = validateIPv6(ip)
	if err != nil {
		return
	}

	log := self.log.WithField("account", signer.Address())

	existing, err := self.IDByPublicKey(ctx, signer.AccountID())
	if err != nil {
		return
	}
	if existing.HasValue {
		self.idempotentHit(log, uint64(existing.AsValue))
		return existing.AsValue, nil
	}

	_, err = self.submitter.Submit(ctx, signer, ErrTwinCreationFailed, palletGrid, "create_twin",
		substrate.NewArgs().With("ip", ip))
	if err != nil {
		return
	}

	created, err := self.IDByPublicKey(ctx, signer.AccountID())
	if err != nil {
		return
	}
	if !created.HasValue {
		self.report.Errors.CorrelationFailures.Inc()
		err = correlationError(ErrTwinCreationFailed)
		return
	}

	self.report.State.ResolvedIds.Inc()
	log.WithField("twin_id", created.AsValue).Info("Twin created")
	return created.AsValue, nil
}

func (self *TwinRepository) Update(ctx context.Context, signer *identity.Identity, ip string) (err error) {
	err = validateIPv6(ip)
	if err != nil {
		return
	}

	_, err = self.submitter.Submit(ctx, signer, ErrTwinUpdateFailed, palletGrid, "update_twin",
		substrate.NewArgs().With("ip", ip))
	if err != nil {
		return
	}

	self.log.WithField("account", signer.Address()).Info("Twin updated")
	return
}

func (self *TwinRepository) Get(ctx context.Context, id uint32) (out *model.Twin, err error) {
	raw, err := self.query(ctx, palletGrid, "Twins", id)
	if err != nil {
		return
	}
	if raw == nil {
		err = ErrTwinNotFound
		return
	}
	out, err = model.DecodeTwin(raw, "Twin")
	return out, self.decoded(err)
}

func (self *TwinRepository) GetByPublicKey(ctx context.Context, accountID [32]byte) (out *model.Twin, err error) {
	id, err := self.IDByPublicKey(ctx, accountID)
	if err != nil {
		return
	}
	if !id.HasValue {
		err = ErrTwinNotFound
		return
	}
	return self.Get(ctx, id.AsValue)
}

func (self *TwinRepository) IDByPublicKey(ctx context.Context, accountID [32]byte) (variant.Option[uint32], error) {
	return self.queryID32(ctx, palletGrid, "TwinIdByAccountID", accountID)
}
