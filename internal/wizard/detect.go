package wizard

import (
	"os"

	"github.com/nbxorg/sdc-booter/internal/localident"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	InventoryURL string // from environment, empty otherwise
	NetworkURL   string
	SMBIOSUUID   bool // firmware exposes a platform UUID
}

// Detector abstracts environment and filesystem lookups for testing.
type Detector interface {
	Getenv(key string) string
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) Getenv(key string) string              { return os.Getenv(key) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect scans the environment for directory endpoints and a local identity
// source.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{
		InventoryURL: d.Getenv("SDC_BOOTER_INVENTORY_URL"),
		NetworkURL:   d.Getenv("SDC_BOOTER_NETWORK_URL"),
	}

	if _, err := d.Stat(localident.DefaultUUIDFile); err == nil {
		result.SMBIOSUUID = true
	}

	return result
}
