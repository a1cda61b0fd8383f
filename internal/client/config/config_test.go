package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/flagx"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(flagx.ConfigEnvVar, "")

	os.Args = []string{"teamboard-client", "-a", "remote:7000", "list"}
	cfg := LoadConfig()

	assert.Equal(t, "remote:7000", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ".teamboard", cfg.SessionDir)
}
