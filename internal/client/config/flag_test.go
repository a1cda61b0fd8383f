package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults kept",
			args: []string{"list"},
			want: Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 5 * time.Second, SessionDir: ".teamboard"},
		},
		{
			name: "all flags around a command",
			args: []string{"-a", "srv:1", "show", "42", "-r", "9", "-d", "/tmp/tb"},
			want: Config{ServerEndpointAddr: "srv:1", RequestTimeout: 9 * time.Second, SessionDir: "/tmp/tb"},
		},
		{
			name: "config flag ignored",
			args: []string{"-c", "x.json", "-a=h:2"},
			want: Config{ServerEndpointAddr: "h:2", RequestTimeout: 5 * time.Second, SessionDir: ".teamboard"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			cfg.LoadDefaults()
			parseFlags(&cfg, tt.args)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_parseFlags_BadValuePanics(t *testing.T) {
	cfg := Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseFlags(&cfg, []string{"-r", "soon"}) })
}
