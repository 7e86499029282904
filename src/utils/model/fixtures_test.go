package model

import (
	"math/big"
)

func hashOf(s string) []byte {
	out := make([]byte, 32)
	copy(out, s)
	return out
}

func rawNodeContract(id uint64, twinID uint32) map[string]interface{} {
	return map[string]interface{}{
		"version":     uint64(4),
		"state":       "Created",
		"contract_id": id,
		"twin_id":     uint64(twinID),
		"contract_type": map[string]interface{}{
			"NodeContract": map[string]interface{}{
				"node_id":         uint64(11),
				"deployment_hash": hashOf("hash"),
				"deployment_data": []byte("data"),
				"public_ips":      uint64(1),
				"public_ips_list": []interface{}{
					map[string]interface{}{
						"ip":          []byte("185.206.122.33/24"),
						"gateway":     []byte("185.206.122.1"),
						"contract_id": id,
					},
				},
			},
		},
		"solution_provider_id": nil,
	}
}

func rawNameContract(id uint64, twinID uint32, name string, state interface{}) map[string]interface{} {
	return map[string]interface{}{
		"version":     uint64(4),
		"state":       state,
		"contract_id": id,
		"twin_id":     uint64(twinID),
		"contract_type": map[string]interface{}{
			"NameContract": map[string]interface{}{
				"name": []byte(name),
			},
		},
		"solution_provider_id": map[string]interface{}{"Some": uint64(3)},
	}
}

func rawDeployment(id uint64, twinID uint32) map[string]interface{} {
	return map[string]interface{}{
		"id":                      id,
		"twin_id":                 uint64(twinID),
		"capacity_reservation_id": uint64(7),
		"deployment_hash":         hashOf("deployment"),
		"deployment_data":         []byte("{}"),
		"public_ips_count":        uint64(0),
		"public_ips":              []interface{}{},
		"resources": map[string]interface{}{
			"hru": uint64(1), "sru": uint64(2), "cru": uint64(3), "mru": new(big.Int).SetUint64(4),
		},
	}
}

func rawNode() map[string]interface{} {
	return map[string]interface{}{
		"version": uint64(6),
		"id":      uint64(11),
		"farm_id": uint64(1),
		"twin_id": uint64(5),
		"resources": map[string]interface{}{
			"hru": uint64(1000), "sru": uint64(500), "cru": uint64(8), "mru": uint64(16000),
		},
		"location": map[string]interface{}{
			"city": []byte("Ghent"), "country": []byte("Belgium"), "latitude": []byte("51.05"), "longitude": []byte("3.71"),
		},
		"public_config": map[string]interface{}{
			"ip4":    map[string]interface{}{"ip": []byte("185.206.122.33/24"), "gw": []byte("185.206.122.1")},
			"ip6":    nil,
			"domain": []byte("node.grid.tf"),
		},
		"created":           uint64(1660000000),
		"farming_policy_id": uint64(1),
		"interfaces": []interface{}{
			map[string]interface{}{
				"name": []byte("zos"),
				"mac":  []byte("00:00:00:00:00:01"),
				"ips":  []interface{}{[]byte("10.0.0.1")},
			},
		},
		"certification":    "Certified",
		"secure_boot":      false,
		"virtualized":      true,
		"serial_number":    nil,
		"connection_price": uint64(80),
	}
}
