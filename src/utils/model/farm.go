package model

import (
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type FarmingPolicyLimit struct {
	FarmingPolicyID   uint32
	CU                variant.Option[uint64]
	SU                variant.Option[uint64]
	End               variant.Option[uint64]
	NodeCount         variant.Option[uint32]
	NodeCertification bool
}

func decodeFarmingPolicyLimit(raw interface{}, path string) (out FarmingPolicyLimit, err error) {
	r := newReader(raw, path)
	out.FarmingPolicyID = r.uint32("farming_policy_id")
	out.CU = decodeOptionField(r, "cu", decodeUint64)
	out.SU = decodeOptionField(r, "su", decodeUint64)
	out.End = decodeOptionField(r, "end", decodeUint64)
	out.NodeCount = decodeOptionField(r, "node_count", decodeUint32)
	out.NodeCertification = r.bool("node_certification")
	err = r.Err()
	return
}

type Farm struct {
	Version             uint32
	ID                  uint32
	Name                string
	TwinID              uint32
	PricingPolicyID     uint32
	Certification       FarmCertification
	PublicIPs           []PublicIP
	DedicatedFarm       bool
	FarmingPolicyLimits variant.Option[FarmingPolicyLimit]
}

func DecodeFarm(raw interface{}, path string) (out *Farm, err error) {
	r := newReader(raw, path)

	out = new(Farm)
	out.Version = r.uint32("version")
	out.ID = r.uint32("id")
	out.Name = r.string("name")
	out.TwinID = r.uint32("twin_id")
	out.PricingPolicyID = r.uint32("pricing_policy_id")
	out.Certification = decodeField(r, "certification", DecodeFarmCertification)
	out.PublicIPs = decodeList(r, "public_ips", DecodePublicIP)
	out.DedicatedFarm = r.bool("dedicated_farm")
	out.FarmingPolicyLimits = decodeOptionField(r, "farming_policy_limits", decodeFarmingPolicyLimit)

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}
