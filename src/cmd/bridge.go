package cmd

import (
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func init() {
	bridgeCmd.AddCommand(bridgeRefundCmd, bridgeValidatorsCmd)
	RootCmd.AddCommand(bridgeCmd)
}

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "TFT bridge between tfchain and Stellar",
}

var bridgeRefundCmd = &cobra.Command{
	Use:   "refund <stellar tx hash>",
	Short: "Prints a refund transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		manager, err := connect()
		if err != nil {
			return
		}

		refund, err := manager.Bridge.GetRefundTransaction(ctx, args[0])
		if err != nil {
			return
		}

		executed, err := manager.Bridge.IsRefundedAlready(ctx, args[0])
		if err != nil {
			return
		}

		logger.NewSublogger("bridge-cmd").
			WithField("tx_hash", refund.TxHash).
			WithField("target", refund.Target).
			WithField("amount", refund.Amount).
			WithField("signatures", len(refund.Signatures)).
			WithField("executed", executed).
			Info("Refund")
		return
	},
}

var bridgeValidatorsCmd = &cobra.Command{
	Use:   "validators",
	Short: "Lists bridge validators",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		manager, err := connect()
		if err != nil {
			return
		}

		validators, err := manager.Bridge.Validators(ctx)
		if err != nil {
			return
		}

		log := logger.NewSublogger("bridge-cmd")
		for _, validator := range validators {
			log.WithField("account_id", hexutil.Encode(validator[:])).Info("Validator")
		}
		return
	},
}
