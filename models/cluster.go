package models

// ClusterState is the cached, fully replaceable view of the device roster.
// It is derived from relay responses and is never the authority for role
// assignment, the relay is.
type ClusterState struct {
	Devices     []DeviceInfo `json:"devices"`
	MasterAlive bool         `json:"master_alive"`
}

// Master returns the roster entry holding the master role, if any.
func (c ClusterState) Master() (DeviceInfo, bool) {
	for _, d := range c.Devices {
		if d.Role == RoleMaster {
			return d, true
		}
	}
	return DeviceInfo{}, false
}

// Slaves returns the roster entries holding the slave role.
func (c ClusterState) Slaves() []DeviceInfo {
	var out []DeviceInfo
	for _, d := range c.Devices {
		if d.Role == RoleSlave {
			out = append(out, d)
		}
	}
	return out
}
