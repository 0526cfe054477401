package config

import (
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "short flags", args: []string{"cmd", "-d", "vault.db", "-k", "0123456789abcdef"},
			expected: &Config{DatabasePath: "vault.db", EncryptionKey: "0123456789abcdef"}},
		{name: "long flags", args: []string{"cmd", "--database=my.db", "--key=fedcba9876543210"},
			expected: &Config{DatabasePath: "my.db", EncryptionKey: "fedcba9876543210"}},
		{name: "no flags keeps zero values", args: []string{"cmd"},
			expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
