package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigMinimal(t *testing.T) {
	answers := WizardAnswers{
		InventoryURL: "https://inventory.internal:8080",
		NetworkURL:   "https://netdir.internal:8080",
	}

	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	assert.Contains(t, out, "api_url: https://inventory.internal:8080")
	assert.Contains(t, out, "api_url: https://netdir.internal:8080")
	assert.Contains(t, out, "format: json")
	assert.NotContains(t, out, "insecure:")
	assert.NotContains(t, out, "output:")
}

func TestGenerateConfigFull(t *testing.T) {
	answers := WizardAnswers{
		InventoryURL: "https://inventory.internal:8080",
		NetworkURL:   "https://netdir.internal:8080",
		Insecure:     true,
		Format:       "yaml",
		Output:       "netboot.yml",
	}

	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	assert.Contains(t, out, "output: netboot.yml")
	assert.Contains(t, out, "format: yaml")
	assert.Contains(t, out, "insecure: true")
}
