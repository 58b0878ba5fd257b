package idx_test

import (
	"testing"

	"github.com/spottierlabs/spottier/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := idx.Parse("")
	require.ErrorIs(t, err, idx.ErrInvalid)

	_, err = idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestOrdering(t *testing.T) {
	// The monotonic entropy source guarantees strict ordering even when
	// successive IDs land in the same millisecond
	a := idx.New()
	b := idx.New()

	require.Less(t, a.String(), b.String())
}
