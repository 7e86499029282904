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

func TestNodeTestSuite(t *testing.T) {
	suite.Run(t, new(NodeTestSuite))
}

type NodeTestSuite struct {
	baseSuite
	input *model.NodeInput
}

func rawNode(id uint32, farmID uint32, twinID uint32) map[string]interface{} {
	return map[string]interface{}{
		"version": uint64(6),
		"id":      uint64(id),
		"farm_id": uint64(farmID),
		"twin_id": uint64(twinID),
		"resources": map[string]interface{}{
			"hru": uint64(1000), "sru": uint64(500), "cru": uint64(8), "mru": uint64(16000),
		},
		"location": map[string]interface{}{
			"city": []byte("Ghent"), "country": []byte("Belgium"), "latitude": []byte("51.05"), "longitude": []byte("3.71"),
		},
		"public_config":     nil,
		"created":           uint64(1660000000),
		"farming_policy_id": uint64(1),
		"interfaces":        []interface{}{},
		"certification":     "Diy",
		"secure_boot":       false,
		"virtualized":       false,
		"serial_number":     nil,
		"connection_price":  uint64(80),
	}
}

func (s *NodeTestSuite) SetupTest() {
	s.baseSuite.SetupTest()

	s.input = &model.NodeInput{
		FarmID:    5,
		Resources: model.Resources{HRU: 1000, SRU: 500, CRU: 8, MRU: 16000},
		Location:  model.Location{City: "Ghent", Country: "Belgium", Latitude: "51.05", Longitude: "3.71"},
		Serial:    variant.None[string](),
	}

	s.link.handler = func(call *substrate.Call, signer *identity.Identity) (*substrate.CallOutcome, error) {
		switch call.Function {
		case "create_node":
			s.link.set(uint64(11), palletGrid, "NodeIdByTwinID", uint32(1))
			s.link.set(rawNode(11, 5, 1), palletGrid, "Nodes", uint32(11))
			s.link.set(uint64(11), palletGrid, "NodeID")
			s.link.set([]interface{}{uint64(11)}, palletGrid, "NodesByFarmID", uint32(5))
			return success(signer), nil
		case "set_node_certification":
			return failure(signer, "TfgridModule.NotAllowedToCertifyNode"), nil
		}
		return success(signer), nil
	}
}

func (s *NodeTestSuite) TestCreate() {
	id, err := s.manager.Node.Create(s.ctx, s.alice, s.input)
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint32(11), id)

	call := s.link.lastCall()
	require.Equal(s.T(), "create_node", call.Function)
	interfaces, _ := call.Args.Get("interfaces")
	require.NotNil(s.T(), interfaces)

	again, err := s.manager.Node.Create(s.ctx, s.alice, s.input)
	require.Nil(s.T(), err)
	require.Equal(s.T(), id, again)
	require.Equal(s.T(), 1, s.link.submissions())

	node, err := s.manager.Node.Get(s.ctx, id)
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint32(5), node.FarmID)
	require.Equal(s.T(), "Ghent", node.Location.City)
	require.True(s.T(), node.Certification.IsDiy)
	require.False(s.T(), node.PublicConfig.HasValue)

	ids, err := s.manager.Node.IDsByFarmID(s.ctx, 5)
	require.Nil(s.T(), err)
	require.Equal(s.T(), []uint32{11}, ids)

	last, err := s.manager.Node.LastID(s.ctx)
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint32(11), last)
}

func (s *NodeTestSuite) TestCreateInOtherFarm() {
	_, err := s.manager.Node.Create(s.ctx, s.alice, s.input)
	require.Nil(s.T(), err)

	moved := *s.input
	moved.FarmID = 6
	_, err = s.manager.Node.Create(s.ctx, s.alice, &moved)
	require.True(s.T(), errors.Is(err, ErrValidation))
	require.False(s.T(), errors.Is(err, ErrTransactionFailed))
	require.Equal(s.T(), 1, s.link.submissions())
}

func (s *NodeTestSuite) TestCreateWithoutTwin() {
	charlie, err := identity.FromURI("//Charlie")
	require.Nil(s.T(), err)

	_, err = s.manager.Node.Create(s.ctx, charlie, s.input)
	require.True(s.T(), errors.Is(err, ErrTwinNotFound))
	require.Equal(s.T(), 0, s.link.submissions())
}

func (s *NodeTestSuite) TestUpdate() {
	err := s.manager.Node.Update(s.ctx, s.alice, 11, s.input)
	require.Nil(s.T(), err)

	call := s.link.lastCall()
	require.Equal(s.T(), "update_node", call.Function)
	require.Equal(s.T(), "node_id", call.Args[0].Name)
	require.Equal(s.T(), uint32(11), call.Args[0].Value)
	require.Len(s.T(), call.Args, 8)
}

func (s *NodeTestSuite) TestReportUptime() {
	err := s.manager.Node.ReportUptime(s.ctx, s.alice, 3600)
	require.Nil(s.T(), err)

	uptime, _ := s.link.lastCall().Args.Get("uptime")
	require.Equal(s.T(), uint64(3600), uptime)
}

func (s *NodeTestSuite) TestSetCertification() {
	err := s.manager.Node.SetCertification(s.ctx, s.alice, 11, model.NodeCertification{})
	require.True(s.T(), errors.Is(err, ErrValidation))

	err = s.manager.Node.SetCertification(s.ctx, s.alice, 11, model.NodeCertification{IsDiy: true, IsCertified: true})
	require.True(s.T(), errors.Is(err, ErrValidation))
	require.Empty(s.T(), s.link.composed)

	err = s.manager.Node.SetCertification(s.ctx, s.alice, 11, model.NodeCertificationCertified)
	require.True(s.T(), errors.Is(err, ErrNodeCertificationFailed))

	var txErr *TransactionError
	require.True(s.T(), errors.As(err, &txErr))
	require.Equal(s.T(), "TfgridModule.NotAllowedToCertifyNode", txErr.Message)
}

func (s *NodeTestSuite) TestGetMany() {
	ids := []uint32{3, 1, 2, 5, 4, 9, 8, 7, 6, 10}
	for _, id := range ids {
		s.link.set(rawNode(id, 5, id+100), palletGrid, "Nodes", id)
	}

	nodes, err := s.manager.Node.GetMany(s.ctx, ids)
	require.Nil(s.T(), err)
	require.Len(s.T(), nodes, len(ids))
	for i, node := range nodes {
		require.Equal(s.T(), ids[i], node.ID)
		require.Equal(s.T(), ids[i]+100, node.TwinID)
	}

	_, err = s.manager.Node.GetMany(s.ctx, []uint32{1, 404, 2})
	require.True(s.T(), errors.Is(err, ErrNodeNotFound))

	nodes, err = s.manager.Node.GetMany(s.ctx, nil)
	require.Nil(s.T(), err)
	require.Empty(s.T(), nodes)
}

func (s *NodeTestSuite) TestGetMissing() {
	_, err := s.manager.Node.Get(s.ctx, 404)
	require.True(s.T(), errors.Is(err, ErrNodeNotFound))

	last, err := s.manager.Node.LastID(s.ctx)
	require.Nil(s.T(), err)
	require.Equal(s.T(), uint32(0), last)

	ids, err := s.manager.Node.IDsByFarmID(s.ctx, 5)
	require.Nil(s.T(), err)
	require.Empty(s.T(), ids)
}
