package grid

import (
	"errors"
	"testing"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"
	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestFailureTestSuite(t *testing.T) {
	suite.Run(t, new(FailureTestSuite))
}

// Every mutation surfaces a failed call as a TransactionError of its own kind, carrying the chain's message
type FailureTestSuite struct {
	baseSuite
}

const chainMessage = "Module.SomethingWentWrong"

func (s *FailureTestSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		return failure(signer, chainMessage), nil
	}
}

func (s *FailureTestSuite) operations() map[error]func() error {
	m := s.manager
	charlie, err := identity.FromURI("//Charlie")
	require.Nil(s.T(), err)
	input := &model.NodeInput{FarmID: 1}

	return map[error]func() error{
		ErrTwinCreationFailed: func() error {
			_, err := m.Twin.Create(s.ctx, charlie, "::1")
			return err
		},
		ErrTwinUpdateFailed: func() error {
			return m.Twin.Update(s.ctx, s.alice, "::1")
		},
		ErrAcceptingTermsAndConditionsFailed: func() error {
			return m.Account.AcceptTermsAndConditions(s.ctx, s.alice, "link", "hash")
		},
		ErrFarmCreationFailed: func() error {
			_, err := m.Farm.Create(s.ctx, s.alice, "farm", nil)
			return err
		},
		ErrNodeCreationFailed: func() error {
			_, err := m.Node.Create(s.ctx, s.alice, input)
			return err
		},
		ErrNodeUpdateFailed: func() error {
			return m.Node.Update(s.ctx, s.alice, 1, input)
		},
		ErrNodeUptimeReportFailed: func() error {
			return m.Node.ReportUptime(s.ctx, s.alice, 1)
		},
		ErrNodeCertificationFailed: func() error {
			return m.Node.SetCertification(s.ctx, s.alice, 1, model.NodeCertificationDiy)
		},
		ErrContractCreationFailed: func() error {
			_, err := m.Contract.CreateNameContract(s.ctx, s.alice, "name")
			return err
		},
		ErrContractUpdateFailed: func() error {
			_, err := m.Contract.UpdateNodeContract(s.ctx, s.alice, 1, "hash", "data")
			return err
		},
		ErrContractCancelFailed: func() error {
			return m.Contract.Cancel(s.ctx, s.alice, 1)
		},
		ErrCapacityReservationCreationFailed: func() error {
			policy := model.CapacityReservationPolicy{IsNode: true, AsNode: 1}
			_, err := m.Contract.CreateCapacityReservationContract(s.ctx, s.alice, 1, policy, variant.None[uint64]())
			return err
		},
		ErrCapacityReservationUpdateFailed: func() error {
			_, err := m.Contract.UpdateCapacityReservationContract(s.ctx, s.alice, 1, model.Resources{})
			return err
		},
		ErrConsumptionReportFailed: func() error {
			return m.Contract.ReportResources(s.ctx, s.alice, nil)
		},
		ErrDeploymentCreationFailed: func() error {
			_, err := m.Deployment.Create(s.ctx, s.alice, 1, "hash", "data", model.Resources{}, 0)
			return err
		},
		ErrDeploymentUpdateFailed: func() error {
			_, err := m.Deployment.Update(s.ctx, s.alice, 1, "hash", "data", model.Resources{})
			return err
		},
		ErrDeploymentCancelFailed: func() error {
			return m.Deployment.Cancel(s.ctx, s.alice, 1)
		},
		ErrRefundTransactionFailed: func() error {
			return m.Bridge.CreateRefundTransactionOrAddSig(s.ctx, s.alice, "tx", "target", 1, "sig", "key", 1)
		},
		ErrSetRefundTransactionExecutedFailed: func() error {
			return m.Bridge.SetRefundTransactionExecuted(s.ctx, s.alice, "tx")
		},
		ErrProposeOrVoteMintTransactionFailed: func() error {
			return m.Bridge.ProposeOrVoteMintTransaction(s.ctx, s.alice, "tx", s.bob.AccountID(), 1)
		},
	}
}

func (s *FailureTestSuite) TestEveryKind() {
	operations := s.operations()
	require.Len(s.T(), operations, 20)

	for kind, operation := range operations {
		err := operation()
		require.NotNil(s.T(), err, kind.Error())
		require.True(s.T(), errors.Is(err, kind), kind.Error())
		require.True(s.T(), errors.Is(err, ErrTransactionFailed), kind.Error())
		require.False(s.T(), errors.Is(err, ErrCorrelationFailed), kind.Error())

		var txErr *TransactionError
		require.True(s.T(), errors.As(err, &txErr), kind.Error())
		require.Equal(s.T(), chainMessage, txErr.Message, kind.Error())
		require.Equal(s.T(), kind.Error()+": "+chainMessage, txErr.Error())

		for other := range operations {
			if other != kind {
				require.False(s.T(), errors.Is(err, other), "%s is not %s", kind, other)
			}
		}
	}

	require.Equal(s.T(), uint64(20), s.manager.Monitor().GetReport().Grid.Errors.FailedSubmissions.Load())
}

func (s *FailureTestSuite) TestNothingIsRetried() {
	_, err := s.manager.Contract.CreateNodeContract(s.ctx, s.alice, 1, "hash", "data", 0, variant.None[uint64]())
	require.True(s.T(), errors.Is(err, ErrContractCreationFailed))
	require.Equal(s.T(), 1, s.link.submissions())
}
