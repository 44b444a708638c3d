package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	effectiveFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 2, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(Cursor{SortKey: effectiveFrom, TieBreak: createdAt, ID: "rate-42"})
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, effectiveFrom, decoded.SortKey)
	assert.Equal(t, createdAt, decoded.TieBreak)
	assert.Equal(t, "rate-42", decoded.ID)

	// Zero times survive the round trip
	decoded, err = DecodeToken(EncodeToken(Cursor{ID: "x"}))
	require.NoError(t, err)
	assert.True(t, decoded.SortKey.IsZero())
	assert.True(t, decoded.TieBreak.IsZero())

	// Non-UTC offsets keep the same instant
	accra := time.FixedZone("GMT", 0)
	lagos := time.FixedZone("WAT", 3600)
	now := time.Now().In(lagos)
	decoded, err = DecodeToken(EncodeToken(Cursor{SortKey: now, TieBreak: now.In(accra), ID: "y"}))
	require.NoError(t, err)
	assert.True(t, now.Equal(decoded.SortKey))
	assert.True(t, now.Equal(decoded.TieBreak))
}

func TestEncodeToken_IDWithSeparator(t *testing.T) {
	decoded, err := DecodeToken(EncodeToken(Cursor{ID: "a|b"}))
	require.NoError(t, err)
	assert.Equal(t, "a|b", decoded.ID)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z"))
	_, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Two-part cursors carry no id and cannot resume inside a tie
	twoPart := base64.URLEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z|2024-01-01T00:00:00Z"))
	_, err = DecodeToken(twoPart)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|2024-01-01T00:00:00Z|r1"))
	_, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sort key parse")

	badTieBreak := base64.URLEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z|notadate|r1"))
	_, err = DecodeToken(badTieBreak)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tie break parse")

	emptyID := base64.URLEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z|2024-01-01T00:00:00Z|"))
	_, err = DecodeToken(emptyID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}
