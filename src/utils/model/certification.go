package model

import (
	"github.com/warp-contracts/gridclient/src/utils/variant"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

type FarmCertification struct {
	IsNotCertified bool
	IsGold         bool
}

func DecodeFarmCertification(raw interface{}, path string) (out FarmCertification, err error) {
	name, _, err := variant.Expect(raw, path, "NotCertified", "Gold")
	if err != nil {
		return
	}
	out.IsNotCertified = name == "NotCertified"
	out.IsGold = name == "Gold"
	return
}

func (self FarmCertification) String() string {
	if self.IsGold {
		return "Gold"
	}
	return "NotCertified"
}

type NodeCertification struct {
	IsDiy       bool
	IsCertified bool
}

var (
	NodeCertificationDiy       = NodeCertification{IsDiy: true}
	NodeCertificationCertified = NodeCertification{IsCertified: true}
)

func DecodeNodeCertification(raw interface{}, path string) (out NodeCertification, err error) {
	name, _, err := variant.Expect(raw, path, "Diy", "Certified")
	if err != nil {
		return
	}
	out.IsDiy = name == "Diy"
	out.IsCertified = name == "Certified"
	return
}

func (self NodeCertification) Validate() error {
	return variant.ExactlyOne("NodeCertification", self.IsDiy, self.IsCertified)
}

// Name is the variant tag used in calls
func (self NodeCertification) Name() string {
	if self.IsCertified {
		return "Certified"
	}
	return "Diy"
}

func (self NodeCertification) String() string {
	return self.Name()
}

// Encode writes the variant index used by set_node_certification
func (self NodeCertification) Encode(encoder scale.Encoder) error {
	if self.IsCertified {
		return encoder.PushByte(1)
	}
	return encoder.PushByte(0)
}
