package model

// TagAdmin marks the interface carrying the admin network role.
const TagAdmin = "admin"

// Nic is a physical network interface registered in the fleet directory.
// The MAC address is its identifier.
type Nic struct {
	MAC       string
	BelongsTo string   // UUID of the owning host
	Tags      []string // semantic network roles, e.g. "admin"
}

// HasTag reports whether the NIC carries the given tag.
func (n Nic) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Aggregation is a link aggregation: a logical trunk over several physical
// NICs, carrying its own tag set.
type Aggregation struct {
	ID        string
	BelongsTo string
	MACs      []string // member MACs; the first entry is the trunk's own MAC
	Tags      []string
}

// HasTag reports whether the aggregation carries the given tag.
func (a Aggregation) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PrimaryMAC returns the aggregation's representative MAC address, defined by
// the link-aggregation mechanism as the first entry of its MAC list. Empty
// when the MAC list is empty.
func (a Aggregation) PrimaryMAC() string {
	if len(a.MACs) == 0 {
		return ""
	}
	return a.MACs[0]
}
