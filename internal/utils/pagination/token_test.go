package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 5, 0, 123456789, time.UTC)

	token := EncodeToken(ts, 42)
	assert.NotEmpty(t, token)

	gotTS, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, 42, gotID)

	// Non-UTC input is normalized
	sp := time.FixedZone("BRT", -3*3600)
	gotTS, _, err = DecodeToken(EncodeToken(ts.In(sp), 1))
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2024-03-01T10:00:00Z")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("notadate|3")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")

	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2024-03-01T10:00:00Z|x")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-4))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, MaxLimit, ClampLimit(5000))
}
