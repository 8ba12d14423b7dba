package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMAC(t *testing.T) {
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", NormalizeMAC("AA:BB:CC:DD:EE:FF"))
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", NormalizeMAC("aa-bb-cc-dd-ee-ff"))
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", NormalizeMAC("  aa.bb.cc.dd.ee.ff\n"))
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", NormalizeMAC("aa:bb:cc:dd:ee:ff"))
}
