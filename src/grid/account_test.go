package grid

import (
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warp-contracts/gridclient/src/utils/activation"
	"github.com/warp-contracts/gridclient/src/utils/config"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

type AccountTestSuite struct {
	baseSuite
	status int
	server *httptest.Server
}

func (s *AccountTestSuite) SetupSuite() {
	s.baseSuite.SetupSuite()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.status)
	}))
}

func (s *AccountTestSuite) TearDownSuite() {
	s.server.Close()
	s.baseSuite.TearDownSuite()
}

func (s *AccountTestSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.status = http.StatusOK

	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		link, _ := call.Args.Get("document_link")
		hash, _ := call.Args.Get("document_hash")
		key := storageKey(palletGrid, "UsersTermsAndConditions", signer.AccountID())
		accepted, _ := s.link.storage[key].([]interface{})
		s.link.storage[key] = append(accepted, map[string]interface{}{
			"account_id":    signer.PublicKey(),
			"timestamp":     uint64(1700000000),
			"document_link": []byte(link.(string)),
			"document_hash": []byte(hash.(string)),
		})
		return success(signer), nil
	}
}

func (s *AccountTestSuite) withActivation() {
	conf := config.Default().Activation
	conf.Url = s.server.URL
	s.manager.WithActivation(activation.NewClient(&conf))
}

func (s *AccountTestSuite) TestBalance() {
	s.link.set(map[string]interface{}{
		"nonce":       uint64(3),
		"consumers":   uint64(0),
		"providers":   uint64(1),
		"sufficients": uint64(0),
		"data": map[string]interface{}{
			"free":     new(big.Int).SetUint64(1_000_000_000),
			"reserved": uint64(0),
			"frozen":   uint64(10),
			"flags":    new(big.Int),
		},
	}, palletSystem, "Account", s.alice.AccountID())

	info, err := s.manager.Account.Get(s.ctx, s.alice.AccountID())
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint32(3), info.Nonce)

	balance, err := s.manager.Account.Balance(s.ctx, s.alice.AccountID())
	require.Nil(s.T(), err)
	require.Equal(s.T(), "1000000000", balance.Free.String())

	// Unknown accounts hold nothing
	balance, err = s.manager.Account.Balance(s.ctx, [32]byte{1})
	require.Nil(s.T(), err)
	require.Equal(s.T(), 0, balance.Free.Sign())
}

func (s *AccountTestSuite) TestActivate() {
	err := s.manager.Account.Activate(s.ctx, s.alice)
	require.True(s.T(), errors.Is(err, ErrActivationNotConfigured))

	s.withActivation()
	err = s.manager.Account.Activate(s.ctx, s.alice)
	require.Nil(s.T(), err)

	s.status = http.StatusConflict
	err = s.manager.Account.Activate(s.ctx, s.alice)
	require.Nil(s.T(), err)

	s.status = http.StatusInternalServerError
	err = s.manager.Account.Activate(s.ctx, s.alice)
	require.True(s.T(), errors.Is(err, activation.ErrActivationFailed))

	report := s.manager.Monitor().GetReport().Grid
	require.Equal(s.T(), uint64(2), report.State.Activations.Load())
	require.Equal(s.T(), uint64(1), report.Errors.ActivationErrors.Load())
}

func (s *AccountTestSuite) TestAcceptTermsAndConditions() {
	err := s.manager.Account.AcceptTermsAndConditions(s.ctx, s.alice, "https://library.threefold.me/info/legal/#/", "hash")
	require.Nil(s.T(), err)
	require.Equal(s.T(), "TfgridModule.user_accept_tc", s.link.lastCall().Name())

	err = s.manager.Account.AcceptTermsAndConditions(s.ctx, s.alice, "https://library.threefold.me/info/legal/#/", "hash")
	require.Nil(s.T(), err)
	require.Equal(s.T(), 1, s.link.submissions())
}

func (s *AccountTestSuite) TestAcceptNewTermsAndConditions() {
	err := s.manager.Account.AcceptTermsAndConditions(s.ctx, s.alice, "https://library.threefold.me/info/legal/#/", "hash")
	require.Nil(s.T(), err)

	// New revision of the document
	err = s.manager.Account.AcceptTermsAndConditions(s.ctx, s.alice, "https://library.threefold.me/info/legal/#/", "hash2")
	require.Nil(s.T(), err)
	require.Equal(s.T(), 2, s.link.submissions())
	hash, _ := s.link.lastCall().Args.Get("document_hash")
	require.Equal(s.T(), "hash2", hash)

	// Other document
	err = s.manager.Account.AcceptTermsAndConditions(s.ctx, s.alice, "https://example.com/terms", "hash2")
	require.Nil(s.T(), err)
	require.Equal(s.T(), 3, s.link.submissions())

	// Each of them is accepted only once
	err = s.manager.Account.AcceptTermsAndConditions(s.ctx, s.alice, "https://library.threefold.me/info/legal/#/", "hash2")
	require.Nil(s.T(), err)
	require.Equal(s.T(), 3, s.link.submissions())
}

func (s *AccountTestSuite) TestAcceptTermsAndConditionsFailure() {
	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		return failure(signer, "TfgridModule.DocumentLinkInputTooShort"), nil
	}

	err := s.manager.Account.AcceptTermsAndConditions(s.ctx, s.bob, "", "")
	require.True(s.T(), errors.Is(err, ErrAcceptingTermsAndConditionsFailed))
	require.True(s.T(), errors.Is(err, ErrTransactionFailed))
}
