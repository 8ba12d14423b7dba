package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/nbxorg/sdc-booter/internal/model"
	"github.com/nbxorg/sdc-booter/internal/util"
)

// NetworkClient talks to the network service owning NIC and aggregation
// records.
type NetworkClient struct {
	opts   ClientOptions
	client *http.Client
}

func NewNetworkClient(opts ClientOptions) *NetworkClient {
	return &NetworkClient{opts: opts, client: newHTTPClient(opts)}
}

type nicRecord struct {
	MAC          string   `json:"mac"`
	BelongsTo    string   `json:"belongs_to_uuid"`
	TagsProvided []string `json:"nic_tags_provided"`
}

type aggrRecord struct {
	ID           string   `json:"id"`
	BelongsTo    string   `json:"belongs_to_uuid"`
	MACs         []string `json:"macs"`
	TagsProvided []string `json:"nic_tags_provided"`
}

func (r nicRecord) toModel() model.Nic {
	return model.Nic{MAC: r.MAC, BelongsTo: r.BelongsTo, Tags: r.TagsProvided}
}

// ListNics returns the NIC inventory of one host, in service listing order.
func (c *NetworkClient) ListNics(ctx context.Context, hostUUID string) ([]model.Nic, error) {
	const op = "list nics"

	body, err := apiGet(ctx, c.client, c.opts, "network", op,
		"/nics?belongs_to_uuid="+url.QueryEscape(hostUUID))
	if err != nil {
		return nil, err
	}

	var recs []nicRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, &ServiceError{Service: "network", Op: op, Err: err}
	}

	nics := make([]model.Nic, 0, len(recs))
	for _, r := range recs {
		nics = append(nics, r.toModel())
	}
	return nics, nil
}

// ListAggregations returns link aggregations matching the filter, in service
// listing order.
func (c *NetworkClient) ListAggregations(ctx context.Context, filter AggregationFilter) ([]model.Aggregation, error) {
	const op = "list aggregations"

	path := "/aggregations"
	if filter.BelongsTo != "" {
		path += "?belongs_to_uuid=" + url.QueryEscape(filter.BelongsTo)
	}

	body, err := apiGet(ctx, c.client, c.opts, "network", op, path)
	if err != nil {
		return nil, err
	}

	var recs []aggrRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, &ServiceError{Service: "network", Op: op, Err: err}
	}

	aggrs := make([]model.Aggregation, 0, len(recs))
	for _, r := range recs {
		aggrs = append(aggrs, model.Aggregation{
			ID:        r.ID,
			BelongsTo: r.BelongsTo,
			MACs:      r.MACs,
			Tags:      r.TagsProvided,
		})
	}
	return aggrs, nil
}

// GetNic fetches a single NIC record by hardware address.
func (c *NetworkClient) GetNic(ctx context.Context, mac string) (model.Nic, error) {
	const op = "get nic"

	body, err := apiGet(ctx, c.client, c.opts, "network", op,
		"/nics/"+url.PathEscape(util.NormalizeMAC(mac)))
	if err != nil {
		return model.Nic{}, err
	}

	var rec nicRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return model.Nic{}, &ServiceError{Service: "network", Op: op, Err: err}
	}
	return rec.toModel(), nil
}

func (c *NetworkClient) Validate() []ValidationError {
	return validateEndpoint("directory.network", c.opts.APIURL)
}
