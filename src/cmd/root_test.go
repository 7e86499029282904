package cmd

import (
	"errors"
	"testing"

	gridpkg "github.com/warp-contracts/gridclient/src/grid"
	"github.com/warp-contracts/gridclient/src/utils/config"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/atomic"
)

func TestRootTestSuite(t *testing.T) {
	suite.Run(t, new(RootTestSuite))
}

type RootTestSuite struct {
	suite.Suite
}

// Only Close is expected to be called
type closingLink struct {
	substrate.Link
	closed atomic.Int32
}

func (self *closingLink) Close() {
	self.closed.Inc()
}

func (s *RootTestSuite) TestLinkClosedWhenCommandFails() {
	link := new(closingLink)
	errFailing := errors.New("failing")

	failing := &cobra.Command{
		Use: "failing-command",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid = gridpkg.NewManager(link)
			return errFailing
		},
	}
	RootCmd.AddCommand(failing)
	defer RootCmd.RemoveCommand(failing)

	RootCmd.SetArgs([]string{"failing-command"})
	defer RootCmd.SetArgs(nil)

	err := RootCmd.Execute()
	require.True(s.T(), errors.Is(err, errFailing))
	require.Equal(s.T(), int32(1), link.closed.Load())
	require.Nil(s.T(), grid)
}

func (s *RootTestSuite) TestSignerSchemes() {
	conf = config.Default()
	defer func() { conf = nil }()

	conf.Identity.Secret = "//Alice"
	alice, err := signer()
	require.Nil(s.T(), err)
	require.Equal(s.T(), identity.SchemeSr25519, alice.Scheme())

	conf.Identity.Scheme = "ed25519"
	conf.Identity.Secret = "0x0707070707070707070707070707070707070707070707070707070707070707"
	ed, err := signer()
	require.Nil(s.T(), err)
	require.Equal(s.T(), identity.SchemeEd25519, ed.Scheme())

	conf.Identity.Scheme = "ecdsa"
	_, err = signer()
	require.NotNil(s.T(), err)

	conf.Identity.Secret = ""
	_, err = signer()
	require.True(s.T(), errors.Is(err, ErrNoIdentity))
}
