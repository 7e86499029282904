package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/model"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDeploymentTestSuite(t *testing.T) {
	suite.Run(t, new(DeploymentTestSuite))
}

type DeploymentTestSuite struct {
	baseSuite
	nextID    uint64
	resources model.Resources
}

func (s *DeploymentTestSuite) SetupTest() {
	s.baseSuite.SetupTest()
	s.nextID = 100
	s.resources = model.Resources{HRU: 1, SRU: 2, CRU: 3, MRU: 4}

	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		twinID := uint32(1)
		if signer == s.bob {
			twinID = 2
		}

		switch call.Function {
		case "deployment_create":
			id := s.nextID
			s.nextID++
			deployment := rawDeployment(id, twinID)
			s.link.set(deployment, palletContract, "Deployments", id)
			return success(signer, event(palletContract, "DeploymentCreated", deployment)), nil
		case "deployment_update":
			id, _ := call.Args.Get("id")
			deployment := rawDeployment(id.(uint64), twinID)
			return success(signer, event(palletContract, "DeploymentUpdated", deployment)), nil
		case "deployment_cancel":
			id, _ := call.Args.Get("id")
			delete(s.link.storage, storageKey(palletContract, "Deployments", id))
			return success(signer, event(palletContract, "DeploymentCanceled", []interface{}{id})), nil
		}
		return failure(signer, "unexpected call"), nil
	}
}

func (s *DeploymentTestSuite) TestLifecycle() {
	id, err := s.manager.Deployment.Create(s.ctx, s.alice, 7, "hash", "{}", s.resources, 0)
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint64(100), id)

	deployment, err := s.manager.Deployment.Get(s.ctx, id)
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint32(1), deployment.TwinID)
	require.Equal(s.T(), uint64(7), deployment.CapacityReservationID)
	require.Equal(s.T(), s.resources, deployment.Resources)

	updated, err := s.manager.Deployment.Update(s.ctx, s.alice, id, "hash2", "{}", s.resources)
	require.Nil(s.T(), err)
	require.Equal(s.T(), id, updated)

	err = s.manager.Deployment.Cancel(s.ctx, s.alice, id)
	require.Nil(s.T(), err)

	_, err = s.manager.Deployment.Get(s.ctx, id)
	require.True(s.T(), errors.Is(err, ErrDeploymentNotFound))
}

func (s *DeploymentTestSuite) TestCreateIsNotIdempotent() {
	first, err := s.manager.Deployment.Create(s.ctx, s.alice, 7, "hash", "{}", s.resources, 0)
	require.Nil(s.T(), err)

	second, err := s.manager.Deployment.Create(s.ctx, s.alice, 7, "hash", "{}", s.resources, 0)
	require.Nil(s.T(), err)
	require.NotEqual(s.T(), first, second)
	require.Equal(s.T(), 2, s.link.submissions())
}

func (s *DeploymentTestSuite) TestHashTooLong() {
	_, err := s.manager.Deployment.Create(s.ctx, s.alice, 7, strings.Repeat("x", 33), "{}", s.resources, 0)
	require.True(s.T(), errors.Is(err, ErrValidation))

	_, err = s.manager.Deployment.Update(s.ctx, s.alice, 1, strings.Repeat("x", 33), "{}", s.resources)
	require.True(s.T(), errors.Is(err, ErrValidation))
	require.Empty(s.T(), s.link.composed)
}

func (s *DeploymentTestSuite) TestBobsDeploymentIsNotAlices() {
	// Bob's deployment is the only one in the block
	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		return success(signer, event(palletContract, "DeploymentCreated", rawDeployment(55, 2))), nil
	}

	_, err := s.manager.Deployment.Create(s.ctx, s.alice, 7, "hash", "{}", s.resources, 0)
	require.True(s.T(), errors.Is(err, ErrDeploymentCreationFailed))
	require.True(s.T(), errors.Is(err, ErrCorrelationFailed))
}
