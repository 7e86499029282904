package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/activation"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type AccountRepository struct {
	repository

	activation *activation.Client
}

func (self *AccountRepository) Get(ctx context.Context, accountID [32]byte) (out *model.AccountInfo, err error) {
	raw, err := self.query(ctx, palletSystem, "Account", accountID)
	if err != nil {
		return
	}
	out, err = model.DecodeAccountInfo(raw, "System.Account")
	return out, self.decoded(err)
}

func (self *AccountRepository) Balance(ctx context.Context, accountID [32]byte) (out *model.Balance, err error) {
	info, err := self.Get(ctx, accountID)
	if err != nil {
		return
	}
	return &info.Data, nil
}

// Activate funds a new account through the activation service
func (self *AccountRepository) Activate(ctx context.Context, signer *identity.Identity) (err error) {
	if self.activation == nil {
		return ErrActivationNotConfigured
	}

	err = self.activation.Activate(ctx, signer.Address())
	if err != nil {
		self.report.Errors.ActivationErrors.Inc()
		return
	}

	self.report.State.Activations.Inc()
	return
}

// AcceptTermsAndConditions signs the terms document, unless the account already did
func (self *AccountRepository) AcceptTermsAndConditions(ctx context.Context, signer *identity.Identity, documentLink, documentHash string) (err error) {
	log := self.log.WithField("account", signer.Address())

	raw, err := self.query(ctx, palletGrid, "UsersTermsAndConditions", signer.AccountID())
	if err != nil {
		return
	}

	accepted, err := variant.Slice(raw, "UsersTermsAndConditions")
	if err != nil {
		return self.decoded(err)
	}
	for _, item := range accepted {
		var same bool
		same, err = sameDocument(item, documentLink, documentHash)
		if err != nil {
			return self.decoded(err)
		}
		if same {
			self.idempotentHit(log, uint64(len(accepted)))
			return
		}
	}

	_, err = self.submitter.Submit(ctx, signer, ErrAcceptingTermsAndConditionsFailed, palletGrid, "user_accept_tc",
		substrate.NewArgs().
			With("document_link", documentLink).
			With("document_hash", documentHash))
	if err != nil {
		return
	}

	log.Info("Terms and conditions accepted")
	return
}

// sameDocument tells if an accepted entry refers to the given link and hash
func sameDocument(raw interface{}, documentLink, documentHash string) (out bool, err error) {
	entry, err := variant.Map(raw, "UsersTermsAndConditions")
	if err != nil {
		return
	}

	link, err := variant.String(entry["document_link"], "UsersTermsAndConditions.document_link")
	if err != nil {
		return
	}

	hash, err := variant.String(entry["document_hash"], "UsersTermsAndConditions.document_hash")
	if err != nil {
		return
	}

	return link == documentLink && hash == documentHash, nil
}
