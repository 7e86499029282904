package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/warp-contracts/gridclient/src/utils/config"
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/spf13/cobra"
)

var (
	RootCmd = &cobra.Command{
		Use:   "gridctl",
		Short: "Reads and registers twins, farms, nodes, contracts and deployments on tfchain",

		// All child commands will use this
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			// Setup a context that gets cancelled upon SIGINT
			ctx, cancel = context.WithCancel(context.Background())

			signalChannel = make(chan os.Signal, 1)
			signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
			go func() {
				select {
				case <-signalChannel:
					cancel()
				case <-ctx.Done():
				}
			}()

			// Load configuration
			conf, err = config.Load(cfgFile)
			if err != nil {
				return
			}

			// Setup logging
			err = logger.Init(conf)
			if err != nil {
				return
			}
			return
		},

		SilenceErrors: true,
	}

	// Configuration
	conf    *config.Config
	cfgFile string

	// Context setup
	ctx           context.Context
	cancel        context.CancelFunc
	signalChannel chan os.Signal
)

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file path")

	// Finalizers run even if the command fails
	cobra.OnFinalize(finish)
}

// finish reports counters and releases the chain link after every command
func finish() {
	if cancel == nil {
		// Flags failed to parse, nothing was set up
		return
	}
	defer func() {
		signal.Stop(signalChannel)
		cancel()
	}()

	log := logger.NewSublogger("root-cmd")
	if grid != nil {
		log.WithField("report", grid.Monitor().GetReport().Grid).Debug("Counters")
		grid.Link().Close()
		grid = nil
	}
	log.Debug("Finished")
}
