package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

// BridgeRepository covers the TFT bridge. Mutations are only accepted from bridge validators.
type BridgeRepository struct {
	repository
}

func (self *BridgeRepository) CreateRefundTransactionOrAddSig(ctx context.Context, signer *identity.Identity, txHash, target string, amount uint64, signature, stellarAddress string, sequenceNumber uint64) (err error) {
	_, err = self.submitter.Submit(ctx, signer, ErrRefundTransactionFailed, palletBridge, "create_refund_transaction_or_add_sig",
		substrate.NewArgs().
			With("tx_hash", txHash).
			With("target", target).
			With("amount", amount).
			With("signature", signature).
			With("stellar_pub_key", stellarAddress).
			With("sequence_number", sequenceNumber))
	return
}

func (self *BridgeRepository) SetRefundTransactionExecuted(ctx context.Context, signer *identity.Identity, txHash string) (err error) {
	_, err = self.submitter.Submit(ctx, signer, ErrSetRefundTransactionExecutedFailed, palletBridge, "set_refund_transaction_executed",
		substrate.NewArgs().With("tx_hash", txHash))
	return
}

func (self *BridgeRepository) ProposeOrVoteMintTransaction(ctx context.Context, signer *identity.Identity, txID string, target [32]byte, amount uint64) (err error) {
	_, err = self.submitter.Submit(ctx, signer, ErrProposeOrVoteMintTransactionFailed, palletBridge, "propose_or_vote_mint_transaction",
		substrate.NewArgs().
			With("transaction", txID).
			With("target", target).
			With("amount", amount))
	return
}

func (self *BridgeRepository) GetRefundTransaction(ctx context.Context, txHash string) (out *model.RefundTransaction, err error) {
	key, err := PadHash(txHash)
	if err != nil {
		return
	}

	raw, err := self.query(ctx, palletBridge, "RefundTransactions", key)
	if err != nil {
		return
	}
	if raw == nil {
		err = ErrRefundNotFound
		return
	}
	out, err = model.DecodeRefundTransaction(raw, "RefundTransaction")
	return out, self.decoded(err)
}

// IsRefundedAlready tells if the refund for the stellar transaction was executed
func (self *BridgeRepository) IsRefundedAlready(ctx context.Context, txHash string) (refunded bool, err error) {
	key, err := PadHash(txHash)
	if err != nil {
		return
	}

	raw, err := self.query(ctx, palletBridge, "ExecutedRefundTransactions", key)
	if err != nil || raw == nil {
		return
	}

	refund, err := model.DecodeRefundTransaction(raw, "ExecutedRefundTransaction")
	if err != nil {
		return false, self.decoded(err)
	}
	return refund.TxHash == txHash, nil
}

func (self *BridgeRepository) IsMintedAlready(ctx context.Context, txID string) (minted bool, err error) {
	raw, err := self.query(ctx, palletBridge, "ExecutedMintTransactions", []byte(txID))
	if err != nil {
		return
	}
	return raw != nil, nil
}

// Validators lists accounts allowed to sign bridge transactions
func (self *BridgeRepository) Validators(ctx context.Context) (out [][32]byte, err error) {
	raw, err := self.query(ctx, palletBridge, "Validators")
	if err != nil {
		return
	}

	items, err := variant.Slice(raw, "Validators")
	if err != nil {
		return nil, self.decoded(err)
	}

	out = make([][32]byte, 0, len(items))
	for _, item := range items {
		var validator [32]byte
		validator, err = variant.Hash32(item, "Validators")
		if err != nil {
			return nil, self.decoded(err)
		}
		out = append(out, validator)
	}
	return
}
