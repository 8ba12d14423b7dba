package resolve

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nbxorg/sdc-booter/internal/directory"
	"github.com/nbxorg/sdc-booter/internal/localident"
	"github.com/nbxorg/sdc-booter/internal/logging"
	"github.com/nbxorg/sdc-booter/internal/model"
)

// Resolver answers host and admin-interface questions against the fleet
// directory. It issues read-only queries and holds no state between calls.
type Resolver struct {
	Directory directory.Client
	Identity  localident.Provider
	Log       *slog.Logger
}

func New(dir directory.Client, ident localident.Provider, log *slog.Logger) *Resolver {
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{Directory: dir, Identity: ident, Log: log}
}

// Resolve maps a hostname or UUID to its directory record. The identifier is
// tried as an exact UUID match first, then as an exact hostname match; both
// are case-sensitive. With an empty identifier the UUID of the running host
// is used instead.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (model.Host, error) {
	if identifier == "" {
		id, err := r.Identity.HostUUID(ctx)
		if err != nil {
			return model.Host{}, &LocalIdentityError{Err: err}
		}
		if id == "" {
			return model.Host{}, &LocalIdentityError{Err: errors.New("identity provider returned an empty UUID")}
		}
		r.Log.Debug("resolved local host identity", "uuid", id)
		return r.Resolve(ctx, id)
	}

	hosts, err := r.Directory.ListHosts(ctx)
	if err != nil {
		return model.Host{}, err
	}

	for _, h := range hosts {
		if h.UUID == identifier {
			return h, nil
		}
	}
	for _, h := range hosts {
		if h.Hostname == identifier {
			return h, nil
		}
	}

	return model.Host{}, &HostNotFoundError{Identifier: identifier}
}

// ResolveAdminNic determines which of a host's interfaces carries the admin
// network role. The full NIC inventory is always returned, even when no admin
// interface exists; an absent admin NIC is a valid outcome at this layer.
//
// An admin-tagged aggregation takes priority over an admin-tagged NIC: the
// trunk's representative MAC identifies the admin interface. When several
// candidates carry the tag, the first one in directory listing order wins;
// nothing is re-sorted here, the listing order is the contract.
func (r *Resolver) ResolveAdminNic(ctx context.Context, hostUUID string) ([]model.Nic, *model.Nic, error) {
	nics, err := r.Directory.ListNics(ctx, hostUUID)
	if err != nil {
		return nil, nil, err
	}

	aggrs, err := r.Directory.ListAggregations(ctx, directory.AggregationFilter{BelongsTo: hostUUID})
	if err != nil {
		return nil, nil, err
	}

	for _, aggr := range aggrs {
		if !aggr.HasTag(model.TagAdmin) {
			continue
		}
		if len(aggr.MACs) == 0 {
			return nil, nil, &AggregationInvariantError{AggregationID: aggr.ID}
		}

		mac := aggr.PrimaryMAC()
		r.Log.Debug("admin aggregation found", "aggregation", aggr.ID, "mac", mac)

		nic, err := r.Directory.GetNic(ctx, mac)
		if err != nil {
			return nil, nil, err
		}
		return nics, &nic, nil
	}

	for i := range nics {
		if nics[i].HasTag(model.TagAdmin) {
			r.Log.Debug("admin nic found", "mac", nics[i].MAC)
			nic := nics[i]
			return nics, &nic, nil
		}
	}

	r.Log.Debug("no admin interface on host", "uuid", hostUUID)
	return nics, nil, nil
}
