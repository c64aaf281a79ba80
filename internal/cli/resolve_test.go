package cli

import (
	"testing"

	"github.com/alexanderramin/provost/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModule(t *testing.T) {
	p := testutil.NewTestProgramme("P")
	m1 := testutil.AddTestModule(p, "COMP101", "Programming", 10)
	testutil.AddTestModule(p, "COMP102", "Databases", 10)

	got, err := resolveModule(p, "comp101")
	require.NoError(t, err)
	assert.Equal(t, m1.ID, got.ID)

	got, err = resolveModule(p, m1.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, m1.ID, got.ID)

	_, err = resolveModule(p, "GHOST999")
	assert.ErrorContains(t, err, "module not found")

	_, err = resolveModule(p, "")
	assert.Error(t, err)
}

func TestResolveVersion_DefaultsToOnlyVersion(t *testing.T) {
	p := testutil.NewTestProgramme("P")
	v := testutil.AddTestVersion(p, "Full-time")

	got, err := resolveVersion(p, "")
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	got, err = resolveVersion(p, "full-time")
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
}

func TestResolvePLO_ByPosition(t *testing.T) {
	p := testutil.NewTestProgramme("P")
	first := testutil.AddTestPLO(p, "Analyse requirements")
	second := testutil.AddTestPLO(p, "Communicate findings")

	got, err := resolvePLO(p, "PLO1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	got, err = resolvePLO(p, "2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = resolvePLO(p, "PLO9")
	assert.ErrorContains(t, err, "not found")
}
