package model

import (
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

// Resources is the capacity of a node or the capacity used by a deployment
type Resources struct {
	HRU uint64 `mapstructure:"hru" json:"hru"`
	SRU uint64 `mapstructure:"sru" json:"sru"`
	CRU uint64 `mapstructure:"cru" json:"cru"`
	MRU uint64 `mapstructure:"mru" json:"mru"`
}

func DecodeResources(raw interface{}, path string) (out Resources, err error) {
	err = variant.DecodeStruct(raw, path, &out)
	return
}

// PublicIP is a farm ip, possibly reserved by a contract (ContractID > 0)
type PublicIP struct {
	IP         string
	Gateway    string
	ContractID uint64
}

func DecodePublicIP(raw interface{}, path string) (out PublicIP, err error) {
	r := newReader(raw, path)
	out.IP = r.string("ip")

	// Farms store the gateway under "gw", contracts under "gateway"
	if r.optional("gw") != nil {
		out.Gateway = r.string("gw")
	} else {
		out.Gateway = r.string("gateway")
	}

	out.ContractID = r.uint64("contract_id")
	err = r.Err()
	return
}

// PublicIPInput is the ip announced when creating a farm
type PublicIPInput struct {
	IP string `json:"ip"`
	GW string `json:"gw"`
}
