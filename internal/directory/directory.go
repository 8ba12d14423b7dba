package directory

import (
	"context"
	"time"

	"github.com/nbxorg/sdc-booter/internal/model"
)

// Client is the read-only view of the fleet directory used during resolution.
type Client interface {
	ListHosts(ctx context.Context) ([]model.Host, error)
	ListNics(ctx context.Context, hostUUID string) ([]model.Nic, error)
	ListAggregations(ctx context.Context, filter AggregationFilter) ([]model.Aggregation, error)
	GetNic(ctx context.Context, mac string) (model.Nic, error)
}

// AggregationFilter narrows an aggregation listing.
type AggregationFilter struct {
	BelongsTo string // host UUID
}

// ClientOptions configures a directory service client.
type ClientOptions struct {
	APIURL   string
	Token    string
	Insecure bool
	Timeout  time.Duration
}

// Directory combines the two backing services into one Client: the inventory
// service owns host records, the network service owns NICs and aggregations.
type Directory struct {
	Inventory *InventoryClient
	Network   *NetworkClient
}

var _ Client = (*Directory)(nil)

func (d *Directory) ListHosts(ctx context.Context) ([]model.Host, error) {
	return d.Inventory.ListHosts(ctx)
}

func (d *Directory) ListNics(ctx context.Context, hostUUID string) ([]model.Nic, error) {
	return d.Network.ListNics(ctx, hostUUID)
}

func (d *Directory) ListAggregations(ctx context.Context, filter AggregationFilter) ([]model.Aggregation, error) {
	return d.Network.ListAggregations(ctx, filter)
}

func (d *Directory) GetNic(ctx context.Context, mac string) (model.Nic, error) {
	return d.Network.GetNic(ctx, mac)
}
