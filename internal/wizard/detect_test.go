package wizard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDetector struct {
	env   map[string]string
	files map[string]bool
}

func (d fakeDetector) Getenv(key string) string { return d.env[key] }

func (d fakeDetector) Stat(path string) (os.FileInfo, error) {
	if d.files[path] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func TestDetectNothing(t *testing.T) {
	result := Detect(fakeDetector{})
	assert.Empty(t, result.InventoryURL)
	assert.Empty(t, result.NetworkURL)
	assert.False(t, result.SMBIOSUUID)
}

func TestDetectFromEnvironment(t *testing.T) {
	result := Detect(fakeDetector{
		env: map[string]string{
			"SDC_BOOTER_INVENTORY_URL": "https://inventory.internal:8080",
			"SDC_BOOTER_NETWORK_URL":   "https://netdir.internal:8080",
		},
		files: map[string]bool{"/sys/class/dmi/id/product_uuid": true},
	})

	assert.Equal(t, "https://inventory.internal:8080", result.InventoryURL)
	assert.Equal(t, "https://netdir.internal:8080", result.NetworkURL)
	assert.True(t, result.SMBIOSUUID)
}
