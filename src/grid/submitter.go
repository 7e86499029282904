package grid

import (
	"context"
	"fmt"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/logger"
	"github.com/warp-contracts/gridclient/src/utils/monitoring/report"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// Submitter composes, signs and submits a call, then classifies the outcome.
// Every submission waits for inclusion and finalization. Nothing is retried.
type Submitter struct {
	log    *logrus.Entry
	link   substrate.Link
	report *report.GridReport

	// Serializes signing and submission per identity
	locker *identity.Locker
}

func NewSubmitter(link substrate.Link, report *report.GridReport) (self *Submitter) {
	self = new(Submitter)
	self.log = logger.NewSublogger("submitter")
	self.link = link
	self.report = report
	self.locker = identity.NewLocker()
	return
}

// Submit broadcasts exactly one extrinsic. An outcome that isn't successful or carries an error message
// is returned as *TransactionError of the given kind.
func (self *Submitter) Submit(ctx context.Context, signer *identity.Identity, kind error, pallet, function string, args substrate.Args) (outcome *substrate.CallOutcome, err error) {
	log := self.log.WithField("submission", xid.New().String()).
		WithField("call", pallet+"."+function).
		WithField("signer", signer.Address())

	call, err := self.link.ComposeCall(ctx, pallet, function, args)
	if err != nil {
		return nil, fmt.Errorf("failed to compose %s.%s: %w", pallet, function, err)
	}

	unlock := self.locker.Lock(signer)
	defer unlock()

	extrinsic, err := self.link.SignExtrinsic(ctx, call, signer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s: %w", call.Name(), err)
	}

	log.Debug("Submitting")
	self.report.State.Submissions.Inc()

	outcome, err = self.link.Submit(ctx, extrinsic, true /* wait included */, true /* wait finalized */)
	if err != nil {
		self.report.Errors.FailedSubmissions.Inc()
		return nil, fmt.Errorf("failed to submit %s: %w", call.Name(), err)
	}

	if !outcome.Success || outcome.ErrorMessage != "" {
		self.report.Errors.FailedSubmissions.Inc()
		log.WithField("message", outcome.ErrorMessage).Debug("Call failed")
		return nil, &TransactionError{Kind: kind, Message: outcome.ErrorMessage}
	}

	if outcome.Identity == nil {
		outcome.Identity = signer
	}

	log.WithField("block", outcome.BlockNumber).
		WithField("events", len(outcome.Events)).
		Debug("Call finalized")
	return
}
