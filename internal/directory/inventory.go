package directory

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nbxorg/sdc-booter/internal/model"
)

// InventoryClient talks to the host-inventory service.
type InventoryClient struct {
	opts   ClientOptions
	client *http.Client
}

func NewInventoryClient(opts ClientOptions) *InventoryClient {
	return &InventoryClient{opts: opts, client: newHTTPClient(opts)}
}

type hostRecord struct {
	UUID     string `json:"uuid"`
	Hostname string `json:"hostname"`
}

// ListHosts returns every host registered in the fleet.
func (c *InventoryClient) ListHosts(ctx context.Context) ([]model.Host, error) {
	const op = "list hosts"

	body, err := apiGet(ctx, c.client, c.opts, "inventory", op, "/hosts")
	if err != nil {
		return nil, err
	}

	var recs []hostRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, &ServiceError{Service: "inventory", Op: op, Err: err}
	}

	hosts := make([]model.Host, 0, len(recs))
	for _, r := range recs {
		hosts = append(hosts, model.Host{UUID: r.UUID, Hostname: r.Hostname})
	}
	return hosts, nil
}

func (c *InventoryClient) Validate() []ValidationError {
	return validateEndpoint("directory.inventory", c.opts.APIURL)
}
