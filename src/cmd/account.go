package cmd

import (
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	accountBalanceCmd.Flags().StringVar(&accountHex, "account", "", "0x prefixed account id, defaults to the configured identity")
	accountAcceptCmd.Flags().StringVar(&documentLink, "link", "https://library.threefold.me/info/legal/#/", "terms and conditions document")
	accountAcceptCmd.Flags().StringVar(&documentHash, "hash", "", "hash of the document")
	accountCmd.AddCommand(accountBalanceCmd, accountActivateCmd, accountAcceptCmd)
	RootCmd.AddCommand(accountCmd)
}

var (
	accountHex   string
	documentLink string
	documentHash string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Accounts and balances",
}

var accountBalanceCmd = &cobra.Command{
	Use:     "get",
	Aliases: []string{"balance"},
	Short:   "Prints the balance of an account",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := accountID(accountHex)
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		balance, err := manager.Account.Balance(ctx, id)
		if err != nil {
			return
		}

		logger.NewSublogger("account-cmd").
			WithField("free", balance.Free).
			WithField("reserved", balance.Reserved).
			WithField("frozen", balance.MiscFrozen).
			Info("Balance")
		return
	},
}

var accountActivateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Funds the configured identity through the activation service",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := signer()
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		return manager.Account.Activate(ctx, id)
	},
}

var accountAcceptCmd = &cobra.Command{
	Use:   "accept-tc",
	Short: "Accepts terms and conditions, unless already accepted",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		id, err := signer()
		if err != nil {
			return
		}

		manager, err := connect()
		if err != nil {
			return
		}

		return manager.Account.AcceptTermsAndConditions(ctx, id, documentLink, documentHash)
	},
}
