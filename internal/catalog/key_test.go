package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewKey_DefaultsToLatest(t *testing.T) {
	key := NewKey("ds1")
	require.Equal(t, "ds1", key.Identifier)
	require.Equal(t, LatestVersion, key.Version)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CatalogKey
		wantErr bool
	}{
		{name: "bare identifier", input: "ds1", want: CatalogKey{"ds1", LatestVersion}},
		{name: "identifier with version", input: "ds1@2", want: CatalogKey{"ds1", 2}},
		{name: "empty", input: "", wantErr: true},
		{name: "empty identifier", input: "@2", wantErr: true},
		{name: "empty version", input: "ds1@", wantErr: true},
		{name: "non-numeric version", input: "ds1@two", wantErr: true},
		{name: "zero version", input: "ds1@0", wantErr: true},
		{name: "negative non-sentinel", input: "ds1@-3", wantErr: true},
		{name: "sentinel version", input: "ds1@-1", want: CatalogKey{"ds1", LatestVersion}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogKey_String(t *testing.T) {
	require.Equal(t, "ds1@2", CatalogKey{"ds1", 2}.String())
	require.Equal(t, "ds1", CatalogKey{"ds1", LatestVersion}.String())
}

func TestCatalogKey_YAMLRoundTrip(t *testing.T) {
	key := CatalogKey{Identifier: "ds1", Version: 3}

	data, err := yaml.Marshal(key)
	require.NoError(t, err)
	// Compact flow sequence, not a mapping
	require.Equal(t, "[ds1, 3]\n", string(data))

	var back CatalogKey
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Equal(t, key, back)
}

func TestCatalogKey_UnmarshalRejectsMalformed(t *testing.T) {
	var key CatalogKey
	require.ErrorIs(t, yaml.Unmarshal([]byte("identifier: ds1"), &key), ErrInvalidKey)
	require.ErrorIs(t, yaml.Unmarshal([]byte("[ds1, 1, extra]"), &key), ErrInvalidKey)
	require.ErrorIs(t, yaml.Unmarshal([]byte("[ds1, notanumber]"), &key), ErrInvalidKey)
}
