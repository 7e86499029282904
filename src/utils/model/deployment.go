package model

type Deployment struct {
	ID                    uint64
	TwinID                uint32
	CapacityReservationID uint64
	DeploymentHash        [32]byte
	DeploymentData        string
	PublicIPsCount        uint32
	PublicIPs             []PublicIP
	Resources             Resources
}

func DecodeDeployment(raw interface{}, path string) (out *Deployment, err error) {
	r := newReader(raw, path)

	out = new(Deployment)
	out.ID = r.uint64("id")
	out.TwinID = r.uint32("twin_id")
	out.CapacityReservationID = r.uint64("capacity_reservation_id")
	out.DeploymentHash = r.hash32("deployment_hash")
	out.DeploymentData = r.string("deployment_data")
	out.PublicIPsCount = r.uint32("public_ips_count")
	out.PublicIPs = decodeList(r, "public_ips", DecodePublicIP)
	out.Resources = decodeField(r, "resources", DecodeResources)

	err = r.Err()
	if err != nil {
		return nil, err
	}
	return
}
