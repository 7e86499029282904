package model

import (
	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// CapacityReservation asks for resources anywhere in the farm (Any) or in a group of exclusive nodes (Exclusive)
type CapacityReservation struct {
	Resources Resources

	// Only nodes with a public config
	PublicNode bool
}

type ExclusiveCapacityReservation struct {
	GroupID uint32
	CapacityReservation
}

// CapacityReservationPolicy holds exactly one way of picking the node a reservation lands on
type CapacityReservationPolicy struct {
	IsAny bool
	AsAny CapacityReservation

	IsExclusive bool
	AsExclusive ExclusiveCapacityReservation

	// Reserves the whole node
	IsNode bool
	AsNode uint32
}

func (self CapacityReservationPolicy) Validate() error {
	return variant.ExactlyOne("CapacityReservationPolicy", self.IsAny, self.IsExclusive, self.IsNode)
}

func (self CapacityReservationPolicy) String() string {
	switch {
	case self.IsExclusive:
		return "Exclusive"
	case self.IsNode:
		return "Node"
	}
	return "Any"
}

// Encode writes the policy as used by capacity_reservation_contract_create
func (self CapacityReservationPolicy) Encode(encoder scale.Encoder) (err error) {
	switch {
	case self.IsExclusive:
		err = encoder.PushByte(1)
		if err != nil {
			return
		}
		err = encoder.Encode(self.AsExclusive.GroupID)
		if err != nil {
			return
		}
		return self.AsExclusive.CapacityReservation.encode(encoder)
	case self.IsNode:
		err = encoder.PushByte(2)
		if err != nil {
			return
		}
		return encoder.Encode(self.AsNode)
	default:
		err = encoder.PushByte(0)
		if err != nil {
			return
		}
		return self.AsAny.encode(encoder)
	}
}

// Resources followed by optional features, PublicNode being the only one known
func (self CapacityReservation) encode(encoder scale.Encoder) (err error) {
	err = encoder.Encode(self.Resources)
	if err != nil {
		return
	}
	if !self.PublicNode {
		return encoder.PushByte(0)
	}
	// Some, one element, PublicNode
	return encoder.Write([]byte{1, 1 << 2, 0})
}
