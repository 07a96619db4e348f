package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownloadRecording(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "john_doe", "email": "john@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/songs", map[string]interface{}{
		"title": "Enter Sandman", "price": 1.29,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{
		"user_id": 1, "song_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Download saved", decodeMap(t, w)["message"])

	w = do(t, router, http.MethodGet, "/api/songs", nil)
	songs := decodeList(t, w)
	require.Len(t, songs, 1)
	require.EqualValues(t, 1, songs[0]["downloads"])

	w = do(t, router, http.MethodGet, "/api/downloads", nil)
	downloads := decodeList(t, w)
	require.Len(t, downloads, 1)
	require.EqualValues(t, 1, downloads[0]["user_id"])
	require.EqualValues(t, 1, downloads[0]["song_id"])
	require.NotEmpty(t, downloads[0]["date"])
}

func TestDownloadRepeatPairRejected(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "john_doe", "email": "john@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, router, http.MethodPost, "/api/songs", map[string]interface{}{"title": "Enter Sandman"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{
		"user_id": 1, "song_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{
		"user_id": 1, "song_id": 1,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// counter untouched by the rejected repeat
	w = do(t, router, http.MethodGet, "/api/songs", nil)
	require.EqualValues(t, 1, decodeList(t, w)[0]["downloads"])
}

func TestDownloadMissingRows(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "john_doe", "email": "john@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{
		"user_id": 1, "song_id": 7,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodPost, "/api/songs", map[string]interface{}{"title": "Enter Sandman"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{
		"user_id": 7, "song_id": 1,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{"user_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadsCascadeWithUser(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "john_doe", "email": "john@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, router, http.MethodPost, "/api/songs", map[string]interface{}{"title": "Enter Sandman"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, router, http.MethodPost, "/api/downloads", map[string]interface{}{
		"user_id": 1, "song_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodDelete, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/downloads", nil)
	require.Empty(t, decodeList(t, w))
}
