package cmd

import (
	"github.com/warp-contracts/gridclient/src/utils/logger"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	contractCmd.AddCommand(contractGetCmd, contractCreateNameCmd, contractReserveNodeCmd, contractCancelCmd)
	RootCmd.AddCommand(contractCmd)
}

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Node, name, rent and capacity reservation contracts",
}

var contractGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a contract",
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

		contract, err := manager.Contract.Get(ctx, id)
		if err != nil {
			return
		}

		log := logger.NewSublogger("contract-cmd").
			WithField("id", contract.ContractID).
			WithField("twin_id", contract.TwinID).
			WithField("state", contract.State)

		switch {
		case contract.ContractType.IsNodeContract:
			log = log.WithFields(logrus.Fields{
				"type":       "node",
				"node_id":    contract.ContractType.AsNodeContract.NodeID,
				"hash":       hexutil.Encode(contract.ContractType.AsNodeContract.DeploymentHash[:]),
				"public_ips": contract.ContractType.AsNodeContract.PublicIPs,
			})
		case contract.ContractType.IsNameContract:
			log = log.WithField("type", "name").WithField("name", contract.ContractType.AsNameContract.Name)
		case contract.ContractType.IsRentContract:
			log = log.WithField("type", "rent").WithField("node_id", contract.ContractType.AsRentContract.NodeID)
		case contract.ContractType.IsCapacityReservationContract:
			reservation := contract.ContractType.AsCapacityReservationContract
			log = log.WithFields(logrus.Fields{
				"type":        "capacity_reservation",
				"node_id":     reservation.NodeID,
				"total":       reservation.TotalResources,
				"used":        reservation.UsedResources,
				"deployments": reservation.Deployments,
			})
		}

		log.Info("Contract")
		return
	},
}

var contractCreateNameCmd = &cobra.Command{
	Use:   "create-name <name>",
	Short: "Registers a name, unless it's already registered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := signer()
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		// Parallel invocations for one identity would race on the nonce
		unlock := manager.Locker.Lock(id)
		defer unlock()

		contractID, err := manager.Contract.CreateNameContract(ctx, id, args[0])
		if err != nil {
			return
		}

		logger.NewSublogger("contract-cmd").WithField("contract_id", contractID).Info("Name contract ready")
		return
	},
}

var contractReserveNodeCmd = &cobra.Command{
	Use:   "reserve-node <farm id> <node id>",
	Short: "Reserves a whole node of the farm",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		farmID, err := parseUint32(args[0])
		if err != nil {
			return
		}

		nodeID, err := parseUint32(args[1])
		if err != nil {
			return
		}

		id, err := signer()
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		policy := model.CapacityReservationPolicy{IsNode: true, AsNode: nodeID}
		contractID, err := manager.Contract.CreateCapacityReservationContract(ctx, id, farmID, policy, variant.None[uint64]())
		if err != nil {
			return
		}

		logger.NewSublogger("contract-cmd").WithField("contract_id", contractID).Info("Capacity reservation contract created")
		return
	},
}

var contractCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancels a contract of the configured identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		contractID, err := parseUint64(args[0])
		if err != nil {
			return
		}

		id, err := signer()
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		return manager.Contract.Cancel(ctx, id, contractID)
	},
}
