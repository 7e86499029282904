package cmd

import (
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func init() {
	deploymentCmd.AddCommand(deploymentGetCmd)
	RootCmd.AddCommand(deploymentCmd)
}

var deploymentCmd = &cobra.Command{
	Use:   "deployment",
	Short: "Deployments on capacity reservations",
}

var deploymentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a deployment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := parseUint64(args[0])
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		deployment, err := manager.Deployment.Get(ctx, id)
		if err != nil {
			return
		}

		logger.NewSublogger("deployment-cmd").
			WithField("id", deployment.ID).
			WithField("twin_id", deployment.TwinID).
			WithField("capacity_reservation_id", deployment.CapacityReservationID).
			WithField("hash", hexutil.Encode(deployment.DeploymentHash[:])).
			WithField("resources", deployment.Resources).
			Info("Deployment")
		return
	},
}
