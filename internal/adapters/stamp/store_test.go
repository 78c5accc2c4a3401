package stamp_test

import (
	"testing"

	"github.com/rgreenblatt/cmake-cli/internal/adapters/stamp"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store := stamp.NewStore()
	dir := t.TempDir()

	cmd := domain.CommandLine{"cmake", "-GNinja", "-B" + dir}
	require.NoError(t, store.Put(dir, cmd))

	digest, err := store.Get(dir)
	require.NoError(t, err)
	assert.Equal(t, store.Digest(cmd), digest)
}

func TestStore_MissingStampIsEmpty(t *testing.T) {
	store := stamp.NewStore()

	digest, err := store.Get(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, digest)
}

func TestStore_CreatesBuildDirectory(t *testing.T) {
	store := stamp.NewStore()
	dir := t.TempDir() + "/build/debug"

	require.NoError(t, store.Put(dir, domain.CommandLine{"cmake"}))

	digest, err := store.Get(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
}

func TestStore_DigestDistinguishesTokenBoundaries(t *testing.T) {
	store := stamp.NewStore()

	a := store.Digest(domain.CommandLine{"cmake", "-GNinja"})
	b := store.Digest(domain.CommandLine{"cmake", "-G", "Ninja"})
	c := store.Digest(domain.CommandLine{"cmake -GNinja"})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestStore_DigestIsStableAcrossCalls(t *testing.T) {
	store := stamp.NewStore()
	cmd := domain.CommandLine{"cmake", "-GNinja", "-Bbuild/debug"}

	assert.Equal(t, store.Digest(cmd), store.Digest(cmd))
}
