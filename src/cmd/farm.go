package cmd

import (
	"fmt"
	"strings"

	"github.com/warp-contracts/gridclient/src/utils/logger"
	"github.com/warp-contracts/gridclient/src/utils/model"

	"github.com/spf13/cobra"
)

func init() {
	farmGetCmd.Flags().BoolVar(&farmNodes, "nodes", false, "print every node of the farm")
	farmCreateCmd.Flags().StringSliceVar(&farmPublicIPs, "public-ip", nil, "public ip with mask and its gateway, e.g. 185.206.122.33/24=185.206.122.1")
	farmCmd.AddCommand(farmGetCmd, farmCreateCmd)
	RootCmd.AddCommand(farmCmd)
}

var (
	farmNodes     bool
	farmPublicIPs []string
)

// parsePublicIPs splits ip=gateway pairs, the ips themselves are validated on creation
func parsePublicIPs(pairs []string) (out []model.PublicIPInput, err error) {
	for _, pair := range pairs {
		ip, gw, ok := strings.Cut(pair, "=")
		if !ok {
			err = fmt.Errorf("public ip %q has to be ip/mask=gateway", pair)
			return
		}
		out = append(out, model.PublicIPInput{IP: ip, GW: gw})
	}
	return
}

var farmCmd = &cobra.Command{
	Use:   "farm",
	Short: "Farms grouping nodes",
}

var farmGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a farm",
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

		farm, err := manager.Farm.Get(ctx, id)
		if err != nil {
			return
		}

		nodes, err := manager.Node.IDsByFarmID(ctx, id)
		if err != nil {
			return
		}

		log := logger.NewSublogger("farm-cmd")
		log.WithField("id", farm.ID).
			WithField("name", farm.Name).
			WithField("twin_id", farm.TwinID).
			WithField("certification", farm.Certification).
			WithField("public_ips", len(farm.PublicIPs)).
			WithField("nodes", nodes).
			Info("Farm")

		if !farmNodes {
			return
		}

		details, err := manager.Node.GetMany(ctx, nodes)
		if err != nil {
			return
		}
		for _, node := range details {
			log.WithField("id", node.ID).
				WithField("twin_id", node.TwinID).
				WithField("certification", node.Certification).
				WithField("resources", node.Resources).
				Info("Node")
		}
		return
	},
}

var farmCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Creates a farm owned by the configured identity, unless the name is taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		publicIPs, err := parsePublicIPs(farmPublicIPs)
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

		farmID, err := manager.Farm.Create(ctx, id, args[0], publicIPs)
		if err != nil {
			return
		}

		logger.NewSublogger("farm-cmd").WithField("farm_id", farmID).Info("Farm ready")
		return
	},
}
