package localident

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Provider returns the UUID of the currently running host.
type Provider interface {
	HostUUID(ctx context.Context) (string, error)
}

// DefaultUUIDFile is where Linux firmware exposes the platform UUID.
const DefaultUUIDFile = "/sys/class/dmi/id/product_uuid"

// SMBIOS reads the platform UUID exposed by firmware.
type SMBIOS struct {
	Path string // defaults to DefaultUUIDFile
}

func (s *SMBIOS) HostUUID(ctx context.Context) (string, error) {
	path := s.Path
	if path == "" {
		path = DefaultUUIDFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", fmt.Errorf("%s is empty", path)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s holds %q: %w", path, raw, err)
	}

	return id.String(), nil
}
