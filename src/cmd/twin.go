package cmd

import (
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func init() {
	twinCreateCmd.Flags().StringVar(&twinIP, "ip", "::1", "IPv6 address of the twin")
	twinCmd.AddCommand(twinGetCmd, twinCreateCmd)
	RootCmd.AddCommand(twinCmd)
}

var twinIP string

var twinCmd = &cobra.Command{
	Use:   "twin",
	Short: "Twins, the on-chain identities",
}

var twinGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a twin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := parseUint32(args[0])
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		twin, err := manager.Twin.Get(ctx, id)
		if err != nil {
			return
		}

		logger.NewSublogger("twin-cmd").
			WithField("id", twin.ID).
			WithField("account_id", hexutil.Encode(twin.AccountID[:])).
			WithField("ip", twin.IP).
			WithField("entities", len(twin.Entities)).
			Info("Twin")
		return
	},
}

var twinCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates the twin of the configured identity, unless it exists",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := signer()
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		twinID, err := manager.Twin.Create(ctx, id, twinIP)
		if err != nil {
			return
		}

		logger.NewSublogger("twin-cmd").WithField("twin_id", twinID).Info("Twin ready")
		return
	},
}
