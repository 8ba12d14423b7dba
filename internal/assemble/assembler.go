package assemble

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/nbxorg/sdc-booter/internal/model"
)

// ErrAdminNicUnresolved is returned when the resolved topology carries no
// admin interface; a boot document cannot be produced without one.
var ErrAdminNicUnresolved = errors.New("no admin interface resolved")

// Assembler builds the boot network document from a resolved topology.
type Assembler struct {
	Now func() time.Time // defaults to time.Now
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// Assemble produces the boot document for a host. The admin NIC is required;
// nics may be empty.
func (a *Assembler) Assemble(host model.Host, nics []model.Nic, admin *model.Nic) (*model.BootConfig, error) {
	if admin == nil {
		return nil, fmt.Errorf("%w for host %s", ErrAdminNicUnresolved, host.UUID)
	}

	// Map member MACs to their aggregation so NIC entries can reference
	// the trunk they belong to.
	aggrByMAC := make(map[string]string)
	for _, aggr := range host.Aggregations {
		for _, mac := range aggr.MACs {
			aggrByMAC[mac] = aggr.ID
		}
	}

	doc := &model.BootConfig{
		Hostname:    host.Hostname,
		UUID:        host.UUID,
		GeneratedAt: a.now(),
	}

	doc.AdminNic = model.NicConfig{
		MAC:         admin.MAC,
		Tags:        admin.Tags,
		Admin:       true,
		Aggregation: aggrByMAC[admin.MAC],
	}

	tags := make(map[string]bool)
	for _, n := range nics {
		doc.Nics = append(doc.Nics, model.NicConfig{
			MAC:         n.MAC,
			Tags:        n.Tags,
			Admin:       n.MAC == admin.MAC,
			Aggregation: aggrByMAC[n.MAC],
		})
		for _, t := range n.Tags {
			tags[t] = true
		}
	}
	for _, aggr := range host.Aggregations {
		for _, t := range aggr.Tags {
			tags[t] = true
		}
	}

	for t := range tags {
		doc.TagCatalog = append(doc.TagCatalog, t)
	}
	sort.Strings(doc.TagCatalog)

	return doc, nil
}
