package amr

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLoggers(t *testing.T) {
	require.NotNil(t, Info)
	require.NotNil(t, Warn)
	assert.Equal(t, "INFO: ", Info.Prefix())
	assert.Equal(t, "WARN: ", Warn.Prefix())
	assert.Equal(t, log.Ldate|log.Ltime, Info.Flags())
	assert.Equal(t, log.Ldate|log.Ltime, Warn.Flags())
}
