package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrConfig, "missing required field 'code'")

	assert.True(t, Is(err, ErrConfig))
	assert.False(t, Is(err, ErrAsset))
	assert.Contains(t, err.Error(), "missing required field 'code'")
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		want      bool
	}{
		{"config error", Wrap(ErrConfig, "ctx"), IsConfigError, true},
		{"asset error", Wrap(ErrAsset, "ctx"), IsAssetError, true},
		{"assembly error", Wrap(ErrAssembly, "ctx"), IsAssemblyError, true},
		{"packaging error", Wrap(ErrPackaging, "ctx"), IsPackagingError, true},
		{"nil is never a config error", nil, IsConfigError, false},
		{"plain error is not an asset error", New("boom"), IsAssetError, false},
		{"asset is not assembly", Wrap(ErrAsset, "ctx"), IsAssemblyError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.predicate(tt.err))
		})
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("symbol %q: missing 'file'", "tap")

	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), `symbol "tap": missing 'file'`)
}

func TestNewAssetErrorCarriesFileDetail(t *testing.T) {
	err := NewAssetError("icons/magic/default/tap.svg", "undeclared fill %s", "#123456")

	require.Error(t, err)
	assert.True(t, IsAssetError(err))

	details := GetAllDetails(err)
	require.NotEmpty(t, details)
	assert.Contains(t, details[0], "icons/magic/default/tap.svg")
}

func TestDoubleWrapKeepsClass(t *testing.T) {
	inner := NewAssetError("a.svg", "parse failed")
	outer := Wrap(inner, "preprocessing icon set magic")

	assert.True(t, IsAssetError(outer))
	assert.Contains(t, outer.Error(), "preprocessing icon set magic")
}
