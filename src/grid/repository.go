package grid

import (
	"context"
	"errors"

	"github.com/warp-contracts/gridclient/src/utils/monitoring/report"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/sirupsen/logrus"
)

const (
	palletGrid     = "TfgridModule"
	palletContract = "SmartContractModule"
	palletBridge   = "TFTBridgeModule"
	palletSystem   = "System"
)

// Shared by all repositories
type repository struct {
	log        *logrus.Entry
	link       substrate.Link
	submitter  *Submitter
	correlator *Correlator
	report     *report.GridReport
}

func (self *repository) query(ctx context.Context, pallet, item string, keys ...interface{}) (out interface{}, err error) {
	self.report.State.Queries.Inc()

	out, err = self.link.Query(ctx, pallet, item, keys...)
	if err != nil {
		self.report.Errors.QueryErrors.Inc()
	}
	return
}

// decoded counts decode failures on their way to the caller
func (self *repository) decoded(err error) error {
	if errors.Is(err, variant.ErrDecode) {
		self.report.Errors.DecodeErrors.Inc()
	}
	return err
}

// queryID reads an id index. A missing value and the 0 sentinel both mean no entity.
func (self *repository) queryID(ctx context.Context, pallet, item string, keys ...interface{}) (out variant.Option[uint64], err error) {
	raw, err := self.query(ctx, pallet, item, keys...)
	if err != nil || raw == nil {
		return
	}

	id, err := variant.Uint64(raw, pallet+"."+item)
	if err != nil {
		return out, self.decoded(err)
	}
	if id == 0 {
		return
	}
	return variant.Some(id), nil
}

func (self *repository) queryID32(ctx context.Context, pallet, item string, keys ...interface{}) (out variant.Option[uint32], err error) {
	id, err := self.queryID(ctx, pallet, item, keys...)
	if err != nil || !id.HasValue {
		return
	}
	if id.AsValue > uint64(^uint32(0)) {
		err = self.decoded(variant.Errorf(pallet+"."+item, "id %d out of range", id.AsValue))
		return
	}
	return variant.Some(uint32(id.AsValue)), nil
}

// idempotentHit records a creation answered by an existing entity
func (self *repository) idempotentHit(log *logrus.Entry, id uint64) {
	self.report.State.IdempotentHits.Inc()
	log.WithField("id", id).Warn("Entity already exists, nothing submitted")
}
