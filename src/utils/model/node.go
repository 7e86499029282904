package model

import (
	"github.com/warp-contracts/gridclient/src/utils/variant"
)

type Location struct {
	City      string `mapstructure:"city" json:"city"`
	Country   string `mapstructure:"country" json:"country"`
	Latitude  string `mapstructure:"latitude" json:"latitude"`
	Longitude string `mapstructure:"longitude" json:"longitude"`
}

func DecodeLocation(raw interface{}, path string) (out Location, err error) {
	err = variant.DecodeStruct(raw, path, &out)
	return
}

type IP struct {
	IP string `mapstructure:"ip" json:"ip"`
	GW string `mapstructure:"gw" json:"gw"`
}

func DecodeIP(raw interface{}, path string) (out IP, err error) {
	err = variant.DecodeStruct(raw, path, &out)
	return
}

type PublicConfig struct {
	IP4    IP
	IP6    variant.Option[IP]
	Domain variant.Option[string]
}

func DecodePublicConfig(raw interface{}, path string) (out PublicConfig, err error) {
	r := newReader(raw, path)
	out.IP4 = decodeField(r, "ip4", DecodeIP)
	out.IP6 = decodeOptionField(r, "ip6", DecodeIP)
	out.Domain = decodeOptionField(r, "domain", decodeString)
	err = r.Err()
	return
}

type Interface struct {
	Name string   `mapstructure:"name" json:"name"`
	Mac  string   `mapstructure:"mac" json:"mac"`
	IPs  []string `mapstructure:"ips" json:"ips"`
}

func DecodeInterface(raw interface{}, path string) (out Interface, err error) {
	r := newReader(raw, path)
	out.Name = r.string("name")
	out.Mac = r.string("mac")
	out.IPs = decodeList(r, "ips", decodeString)
	err = r.Err()
	return
}

type NodeFeatures struct {
	IsPublicNode bool
}

func decodeNodeFeatures(raw interface{}, path string) (out NodeFeatures, err error) {
	r := newReader(raw, path)
	out.IsPublicNode = r.bool("is_public_node")
	err = r.Err()
	return
}

type Node struct {
	Version         uint32
	ID              uint32
	FarmID          uint32
	TwinID          uint32
	Resources       Resources
	Location        Location
	PublicConfig    variant.Option[PublicConfig]
	Created         uint64
	FarmingPolicyID uint32
	Interfaces      []Interface
	Certification   NodeCertification
	SecureBoot      bool
	Virtualized     bool
	Serial          variant.Option[string]
	ConnectionPrice uint32
	Features        variant.Option[NodeFeatures]
}

func DecodeNode(raw interface{}, path string) (out *Node, err error) {
	r := newReader(raw, path)

	out = new(Node)
	out.Version = r.uint32("version")
	out.ID = r.uint32("id")
	out.FarmID = r.uint32("farm_id")
	out.TwinID = r.uint32("twin_id")
	out.Resources = decodeField(r, "resources", DecodeResources)
	out.Location = decodeField(r, "location", DecodeLocation)
	out.PublicConfig = decodeOptionField(r, "public_config", DecodePublicConfig)
	out.Created = r.uint64("created")
	out.FarmingPolicyID = r.uint32("farming_policy_id")
	out.Interfaces = decodeList(r, "interfaces", DecodeInterface)
	out.Certification = decodeField(r, "certification", DecodeNodeCertification)
	out.SecureBoot = r.bool("secure_boot")
	out.Virtualized = r.bool("virtualized")
	out.Serial = decodeOptionField(r, "serial_number", decodeString)
	out.ConnectionPrice = r.uint32("connection_price")
	out.Features = decodeOptionField(r, "features", decodeNodeFeatures)

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}

// NodeInput carries the arguments of node creation and update calls
type NodeInput struct {
	FarmID      uint32
	Resources   Resources
	Location    Location
	Interfaces  []Interface
	SecureBoot  bool
	Virtualized bool
	Serial      variant.Option[string]
}
