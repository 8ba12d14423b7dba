package model

import "time"

// BootConfig is the boot-time network configuration document handed to the
// provisioning stack.
type BootConfig struct {
	Hostname    string      `json:"hostname" yaml:"hostname"`
	UUID        string      `json:"uuid" yaml:"uuid"`
	AdminNic    NicConfig   `json:"admin_nic" yaml:"admin_nic"`
	Nics        []NicConfig `json:"nics" yaml:"nics"`
	TagCatalog  []string    `json:"nic_tags,omitempty" yaml:"nic_tags,omitempty"`
	GeneratedAt time.Time   `json:"generated_at" yaml:"generated_at"`
}

// NicConfig is one interface entry in the boot document.
type NicConfig struct {
	MAC         string   `json:"mac" yaml:"mac"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Admin       bool     `json:"admin,omitempty" yaml:"admin,omitempty"`
	Aggregation string   `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
}
