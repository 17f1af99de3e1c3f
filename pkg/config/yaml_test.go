package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/config"
	"github.com/dmitrymomot/envkit/pkg/envvar"
)

func mapAccessor(vars map[string]string) *envvar.Accessor {
	return envvar.New(envvar.WithSource(envvar.NewMapSource(vars)))
}

func TestLoadYAMLTo(t *testing.T) {
	t.Parallel()

	acc := mapAccessor(map[string]string{"YAML_NULL": "kept"})
	require.NoError(t, config.LoadYAMLTo(acc, "testdata/app.yaml"))

	assert.Equal(t, "billing", acc.GetOr("YAML_APP_NAME", ""))
	assert.Equal(t, "8080", acc.GetOr("YAML_PORT", ""))
	assert.Equal(t, "true", acc.GetOr("YAML_DEBUG", ""))
	assert.Equal(t, "0.5", acc.GetOr("YAML_RATIO", ""))
	assert.Equal(t, "yes", acc.GetOr("YAML_QUOTED", ""))

	assert.True(t, acc.Exists("YAML_EMPTY"))
	assert.Equal(t, "", acc.GetOr("YAML_EMPTY", "D"))

	// null values and empty lists leave the key alone
	assert.Equal(t, "kept", acc.GetOr("YAML_NULL", ""))
	assert.False(t, acc.Exists("YAML_EMPTY_LIST"))

	hosts, ok := acc.GetList("YAML_HOSTS")
	require.True(t, ok)
	assert.Equal(t, []string{"example.com", "api.example.com"}, hosts)
	assert.True(t, acc.IsEqual("YAML_DEFAULT_HOSTS", "example.com;api.example.com"))
}

func TestLoadYAMLTo_LaterFilesOverride(t *testing.T) {
	t.Parallel()

	acc := mapAccessor(nil)
	require.NoError(t, config.LoadYAMLTo(acc, "testdata/app.yaml", "testdata/override.yaml"))

	assert.Equal(t, "payments", acc.GetOr("YAML_APP_NAME", ""))
	assert.Equal(t, "8080", acc.GetOr("YAML_PORT", ""))
}

func TestLoadYAMLTo_CustomSeparator(t *testing.T) {
	t.Parallel()

	acc := envvar.New(
		envvar.WithSource(envvar.NewMapSource(nil)),
		envvar.WithSeparator(","),
	)
	require.NoError(t, config.LoadYAMLTo(acc, "testdata/app.yaml"))
	assert.True(t, acc.IsEqual("YAML_HOSTS", "example.com,api.example.com"))
}

func TestLoadYAMLTo_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{name: "missing file", path: "testdata/missing.yaml", target: config.ErrLoadingEnvFile},
		{name: "top-level sequence", path: "testdata/sequence.yaml", target: config.ErrLoadingEnvFile},
		{name: "nested mapping", path: "testdata/nested.yaml", target: config.ErrUnsupportedValue},
		{name: "nested list", path: "testdata/nested_list.yaml", target: config.ErrUnsupportedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc := mapAccessor(nil)
			err := config.LoadYAMLTo(acc, tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
