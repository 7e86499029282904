package grid

import (
	"context"

	"github.com/warp-contracts/gridclient/src/utils/config"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Alice and Bob own twins 1 and 2
type baseSuite struct {
	suite.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	alice   *identity.Identity
	bob     *identity.Identity
	link    *fakeLink
	manager *Manager
}

func (s *baseSuite) SetupSuite() {
	var err error
	require.Nil(s.T(), logger.Init(config.Default()))

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.alice, err = identity.FromURI("//Alice")
	require.Nil(s.T(), err)
	s.bob, err = identity.FromURI("//Bob")
	require.Nil(s.T(), err)
}

func (s *baseSuite) TearDownSuite() {
	s.cancel()
}

func (s *baseSuite) SetupTest() {
	s.link = newFakeLink()
	s.link.set(uint64(1), palletGrid, "TwinIdByAccountID", s.alice.AccountID())
	s.link.set(uint64(2), palletGrid, "TwinIdByAccountID", s.bob.AccountID())
	s.manager = NewManager(s.link)
}
