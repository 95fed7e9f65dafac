package plumelib

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneFID(t *testing.T) {
	fid := SceneFID("emit20230813t123456")
	require.NoError(t, fid.Validate())
	assert.Equal(t, "20230813", fid.Date())
	assert.Equal(t, "123456", fid.Clock())

	bad := SceneFID("emit2023")
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidSceneFID))
	assert.Empty(t, bad.Date())
	assert.True(t, errors.Is(SceneFID("emitABCDEFGHt123456").Validate(), ErrInvalidSceneFID))
}

func TestSourceSceneNames(t *testing.T) {
	names, err := SourceSceneNames("002", []SceneFID{"emit20230813t123456", "emit20230813t123508"}, "2322508", []string{"013", "014"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"EMIT_L2B_CH4ENH_002_20230813T123456_2322508_013",
		"EMIT_L2B_CH4ENH_002_20230813T123508_2322508_014",
	}, names)

	_, err = SourceSceneNames("002", []SceneFID{"emit20230813t123456"}, "1", nil)
	assert.True(t, errors.Is(err, ErrSceneCountDiffers))
}

func TestSourceSceneNameNeedsVersion(t *testing.T) {
	name, err := SourceSceneName("", "emit20230813t123456", "2322508", "013")
	assert.True(t, errors.Is(err, ErrNoProductVersion))
	assert.Empty(t, name)

	_, err = SourceSceneNames("", []SceneFID{"emit20230813t123456"}, "2322508", []string{"013"})
	assert.True(t, errors.Is(err, ErrNoProductVersion))
}
