package grid

import (
	"errors"
	"testing"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/monitoring/report"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestSubmitterTestSuite(t *testing.T) {
	suite.Run(t, new(SubmitterTestSuite))
}

type SubmitterTestSuite struct {
	baseSuite
	report    *report.GridReport
	submitter *Submitter
}

func (s *SubmitterTestSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.report = &report.GridReport{}
	s.submitter = NewSubmitter(s.link, s.report)
}

func (s *SubmitterTestSuite) submit() (*substrate.CallOutcome, error) {
	return s.submitter.Submit(s.ctx, s.alice, ErrContractCancelFailed, palletContract, "cancel_contract",
		substrate.NewArgs().With("contract_id", uint64(1)))
}

func (s *SubmitterTestSuite) TestSuccess() {
	outcome, err := s.submit()
	require.Nil(s.T(), err)
	require.True(s.T(), outcome.Success)
	require.Equal(s.T(), s.alice, outcome.Identity)

	require.Equal(s.T(), 1, s.link.submissions())
	require.True(s.T(), s.link.submitted[0].waitIncluded)
	require.True(s.T(), s.link.submitted[0].waitFinalized)
	require.Equal(s.T(), "SmartContractModule.cancel_contract", s.link.lastCall().Name())

	value, ok := s.link.lastCall().Args.Get("contract_id")
	require.True(s.T(), ok)
	require.Equal(s.T(), uint64(1), value)

	require.Equal(s.T(), uint64(1), s.report.State.Submissions.Load())
	require.Equal(s.T(), uint64(0), s.report.Errors.FailedSubmissions.Load())
}

func (s *SubmitterTestSuite) TestFailureClassification() {
	for _, outcome := range []*substrate.CallOutcome{
		failure(s.alice, "SmartContractModule.ContractNotExists"),
		{Success: true, ErrorMessage: "SmartContractModule.TwinNotAuthorized"},
		{Success: false},
	} {
		expected := outcome
		s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
			return expected, nil
		}

		_, err := s.submit()
		require.True(s.T(), errors.Is(err, ErrTransactionFailed))
		require.True(s.T(), errors.Is(err, ErrContractCancelFailed))
		require.False(s.T(), errors.Is(err, ErrContractCreationFailed))
		require.False(s.T(), errors.Is(err, ErrCorrelationFailed))

		var txErr *TransactionError
		require.True(s.T(), errors.As(err, &txErr))
		require.Equal(s.T(), expected.ErrorMessage, txErr.Message)
	}

	require.Equal(s.T(), 3, s.link.submissions())
	require.Equal(s.T(), uint64(3), s.report.Errors.FailedSubmissions.Load())
}

func (s *SubmitterTestSuite) TestTransportError() {
	transport := errors.New("connection reset")
	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		return nil, transport
	}

	_, err := s.submit()
	require.True(s.T(), errors.Is(err, transport))
	require.False(s.T(), errors.Is(err, ErrTransactionFailed))
	require.Equal(s.T(), 1, s.link.submissions())
}
