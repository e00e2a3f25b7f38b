package splist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItemSet(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		items    int
		nextLink string
		wantErr  bool
	}{
		{
			name:     "verbose_with_cursor",
			payload:  `{"d":{"results":[{"Id":1},{"Id":2}],"__next":"http://x/items?$skip=2"}}`,
			items:    2,
			nextLink: "http://x/items?$skip=2",
		},
		{
			name:    "verbose_last_page",
			payload: `{"d":{"results":[{"Id":3}]}}`,
			items:   1,
		},
		{
			name:    "verbose_empty",
			payload: `{"d":{"results":[]}}`,
			items:   0,
		},
		{
			name:     "flat_with_cursor",
			payload:  `{"value":[{"Id":1}],"odata.nextLink":"http://x/items?$skip=1"}`,
			items:    1,
			nextLink: "http://x/items?$skip=1",
		},
		{
			name:    "flat_last_page",
			payload: `{"value":[{"Id":1},{"Id":2},{"Id":3}]}`,
			items:   3,
		},
		{
			name:    "no_envelope",
			payload: `{"Id":1}`,
			wantErr: true,
		},
		{
			name:    "not_json",
			payload: `<html>error</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := decodeItemSet([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, set.Items, tt.items)
			assert.Equal(t, tt.nextLink, set.NextLink)
		})
	}
}

func TestDecodeItem(t *testing.T) {
	verbose, err := decodeItem([]byte(`{"d":{"Id":5,"Title":"Report"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id":5,"Title":"Report"}`, string(verbose))

	flat, err := decodeItem([]byte(`{"Id":5,"Title":"Report"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id":5,"Title":"Report"}`, string(flat))
}

func TestExtractDigest(t *testing.T) {
	t.Run("verbose_shape", func(t *testing.T) {
		digest, err := extractDigest([]byte(`{"d":{"GetContextWebInformation":{"FormDigestValue":"0xABC"}}}`))
		require.NoError(t, err)
		assert.Equal(t, "0xABC", digest)
	})

	t.Run("flat_shape", func(t *testing.T) {
		digest, err := extractDigest([]byte(`{"FormDigestValue":"0xDEF","FormDigestTimeoutSeconds":1800}`))
		require.NoError(t, err)
		assert.Equal(t, "0xDEF", digest)
	})

	t.Run("neither_shape", func(t *testing.T) {
		_, err := extractDigest([]byte(`{"LibraryVersion":"16.0"}`))
		require.Error(t, err)

		var authErr *AuthError
		assert.True(t, errors.As(err, &authErr))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := extractDigest([]byte(`not json`))

		var authErr *AuthError
		assert.True(t, errors.As(err, &authErr))
	})
}
