package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_VersionsAreConsecutiveWithUpAndDown(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	count := 0
	for {
		count++

		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "version %d has no up migration", version)
		_ = up.Close()

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "version %d has no down migration", version)
		_ = down.Close()

		next, err := src.Next(version)
		if err != nil {
			break
		}
		assert.Equal(t, version+1, next)
		version = next
	}

	assert.Equal(t, 4, count)
}

func TestSource_PersonsTableHasPINCheck(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	r, _, err := src.ReadUp(1)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, `CONSTRAINT "CHK_PIN" CHECK (length(pin) = 4)`)
	assert.Contains(t, sql, "pin                  VARCHAR(6)")
	assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS countries"))
}

func TestSource_SeedsRoles(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	r, _, err := src.ReadUp(2)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(body), "('Admin'), ('User')")
}
