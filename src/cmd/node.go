package cmd

import (
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	nodeCmd.AddCommand(nodeGetCmd)
	RootCmd.AddCommand(nodeCmd)
}

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Nodes providing capacity",
}

var nodeGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a node and contracts running on it",
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

		node, err := manager.Node.Get(ctx, id)
		if err != nil {
			return
		}

		contracts, err := manager.Contract.ActiveNodeContracts(ctx, id)
		if err != nil {
			return
		}

		rent, err := manager.Contract.RentContractIDForNode(ctx, id)
		if err != nil {
			return
		}

		logger.NewSublogger("node-cmd").
			WithField("id", node.ID).
			WithField("farm_id", node.FarmID).
			WithField("twin_id", node.TwinID).
			WithField("certification", node.Certification).
			WithField("resources", node.Resources).
			WithField("location", node.Location).
			WithField("contracts", contracts).
			WithField("rent_contract", rent.Or(0)).
			Info("Node")
		return
	},
}
