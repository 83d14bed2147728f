package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people_index.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validCatalog = `{
	"_metadata": {"version": "2.1", "total_names": 2, "total_documents": 5},
	"people": [
		{"slug": "bill-clinton", "display_name": "Bill Clinton", "found_in_documents": true, "total_matches": 12, "documents": []},
		{"slug": "barack-obama", "display_name": "Barack Obama", "found_in_documents": false, "total_matches": 0, "documents": []}
	]
}`

func TestStoreLoad(t *testing.T) {
	store := NewStore(writeCatalogFile(t, validCatalog), time.Minute)

	idx, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "2.1", idx.Metadata.Version)
	assert.Equal(t, 2, idx.Metadata.TotalNames)
	require.Len(t, idx.People, 2)
	assert.Equal(t, "bill-clinton", idx.People[0].Slug)
}

func TestStoreCacheIdentity(t *testing.T) {
	store := NewStore(writeCatalogFile(t, validCatalog), time.Minute)

	first, err := store.Load()
	require.NoError(t, err)
	second, err := store.Load()
	require.NoError(t, err)

	// same snapshot object, not a re-parse
	assert.Same(t, first, second)
}

func TestStoreClearForcesReload(t *testing.T) {
	path := writeCatalogFile(t, validCatalog)
	store := NewStore(path, time.Minute)

	first, err := store.Load()
	require.NoError(t, err)

	store.Clear()

	second, err := store.Load()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestStoreReloadAfterExpiry(t *testing.T) {
	path := writeCatalogFile(t, validCatalog)
	store := NewStore(path, time.Nanosecond)

	first, err := store.Load()
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	second, err := store.Load()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"), time.Minute)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestStoreMalformedJSON(t *testing.T) {
	store := NewStore(writeCatalogFile(t, `{"people": [`), time.Minute)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestStoreMissingPeopleArray(t *testing.T) {
	store := NewStore(writeCatalogFile(t, `{"_metadata": {"version": "1"}}`), time.Minute)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrDataShape)
}

func TestStorePeopleNotAList(t *testing.T) {
	store := NewStore(writeCatalogFile(t, `{"people": 5}`), time.Minute)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrDataShape)
}

func TestStoreFailureIsNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	store := NewStore(path, time.Minute)

	_, err := store.Load()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0644))

	idx, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, idx.People, 2)
}
