package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/logger"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/monitoring/report"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/sirupsen/logrus"
)

// Correlator finds ids of entities created or updated by a call among the events of its block.
// Only events owned by the submitter's twin are taken into account.
type Correlator struct {
	repository
}

func NewCorrelator(link substrate.Link, report *report.GridReport) (self *Correlator) {
	self = new(Correlator)
	self.log = logger.NewSublogger("correlator")
	self.link = link
	self.report = report
	return
}

// ResolveIDs returns ids carried by events of the given kind that belong to the submitter's twin, in emission order
func (self *Correlator) ResolveIDs(ctx context.Context, outcome *substrate.CallOutcome, kind model.EventKind) (out []uint64, err error) {
	twinID, err := self.queryID32(ctx, palletGrid, "TwinIdByAccountID", outcome.Identity.AccountID())
	if err != nil {
		return
	}
	if !twinID.HasValue {
		err = ErrTwinNotFound
		return
	}

	events, err := model.DecodeEvents(outcome.Events, kind)
	if err != nil {
		return nil, self.decoded(err)
	}

	for _, event := range events {
		owned, ok := event.(model.OwnedEvent)
		if !ok || owned.OwnerTwinID() != twinID.AsValue {
			continue
		}
		out = append(out, owned.EntityID())
	}

	self.log.WithFields(logrus.Fields{
		"kind":    kind,
		"twin_id": twinID.AsValue,
		"ids":     out,
	}).Trace("Resolved ids")
	return
}

// ResolveID picks the last matching id. No match is a *TransactionError of the given kind.
func (self *Correlator) ResolveID(ctx context.Context, outcome *substrate.CallOutcome, kind model.EventKind, failure error) (id uint64, err error) {
	ids, err := self.ResolveIDs(ctx, outcome, kind)
	if err != nil {
		return
	}

	if len(ids) == 0 {
		self.report.Errors.CorrelationFailures.Inc()
		err = correlationError(failure)
		return
	}

	self.report.State.ResolvedIds.Inc()
	return ids[len(ids)-1], nil
}
