package assemble

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbxorg/sdc-booter/internal/model"
)

var testHost = model.Host{
	UUID:     "h1",
	Hostname: "hn0",
	Aggregations: []model.Aggregation{
		{ID: "aggr0", BelongsTo: "h1", MACs: []string{"cc", "dd"}, Tags: []string{"admin", "storage"}},
	},
}

var testNics = []model.Nic{
	{MAC: "aa", BelongsTo: "h1", Tags: []string{"external"}},
	{MAC: "cc", BelongsTo: "h1", Tags: []string{"admin"}},
	{MAC: "dd", BelongsTo: "h1"},
}

func TestAssemble(t *testing.T) {
	gen := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	a := &Assembler{Now: func() time.Time { return gen }}
	admin := &model.Nic{MAC: "cc", BelongsTo: "h1", Tags: []string{"admin"}}

	doc, err := a.Assemble(testHost, testNics, admin)
	require.NoError(t, err)

	assert.Equal(t, "hn0", doc.Hostname)
	assert.Equal(t, "h1", doc.UUID)
	assert.Equal(t, gen, doc.GeneratedAt)

	assert.Equal(t, "cc", doc.AdminNic.MAC)
	assert.True(t, doc.AdminNic.Admin)
	assert.Equal(t, "aggr0", doc.AdminNic.Aggregation)

	require.Len(t, doc.Nics, 3)
	assert.False(t, doc.Nics[0].Admin)
	assert.Empty(t, doc.Nics[0].Aggregation)
	assert.True(t, doc.Nics[1].Admin)
	assert.Equal(t, "aggr0", doc.Nics[1].Aggregation)
	assert.Equal(t, "aggr0", doc.Nics[2].Aggregation)

	// Distinct tags from NICs and aggregations, sorted.
	assert.Equal(t, []string{"admin", "external", "storage"}, doc.TagCatalog)
}

func TestAssembleRejectsMissingAdminNic(t *testing.T) {
	a := &Assembler{}

	_, err := a.Assemble(testHost, testNics, nil)
	require.ErrorIs(t, err, ErrAdminNicUnresolved)
	assert.Contains(t, err.Error(), "h1")
}

func TestAssembleEmptyInventory(t *testing.T) {
	a := &Assembler{}
	admin := &model.Nic{MAC: "cc", Tags: []string{"admin"}}

	doc, err := a.Assemble(model.Host{UUID: "h1", Hostname: "hn0"}, nil, admin)
	require.NoError(t, err)
	assert.Empty(t, doc.Nics)
	assert.Equal(t, "cc", doc.AdminNic.MAC)
}

func TestJSONRenderer(t *testing.T) {
	a := &Assembler{}
	admin := &model.Nic{MAC: "cc", Tags: []string{"admin"}}
	doc, err := a.Assemble(testHost, testNics, admin)
	require.NoError(t, err)

	out, err := JSONRenderer{}.Render(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\n"))

	var decoded model.BootConfig
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, doc.AdminNic, decoded.AdminNic)
	assert.Equal(t, doc.TagCatalog, decoded.TagCatalog)
}

func TestYAMLRenderer(t *testing.T) {
	a := &Assembler{}
	admin := &model.Nic{MAC: "cc", Tags: []string{"admin"}}
	doc, err := a.Assemble(testHost, testNics, admin)
	require.NoError(t, err)

	out, err := YAMLRenderer{}.Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "hostname: hn0")
	assert.Contains(t, string(out), "admin_nic:")
}

func TestRendererFor(t *testing.T) {
	r, err := RendererFor("")
	require.NoError(t, err)
	assert.IsType(t, JSONRenderer{}, r)

	r, err = RendererFor("yml")
	require.NoError(t, err)
	assert.IsType(t, YAMLRenderer{}, r)

	_, err = RendererFor("xml")
	require.Error(t, err)
}
