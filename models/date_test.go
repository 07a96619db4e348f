package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1981-10-28"`), &d))
	require.Equal(t, 1981, d.Year())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"1981-10-28"`, string(out))

	require.Error(t, json.Unmarshal([]byte(`"28/10/1981"`), &d))
	require.Error(t, json.Unmarshal([]byte(`19811028`), &d))
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(1981, 10, 28, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "1981-10-28", d.Format("2006-01-02"))

	require.NoError(t, d.Scan("1981-10-28 00:00:00+00:00"))
	require.Equal(t, "1981-10-28", d.Format("2006-01-02"))

	require.Error(t, d.Scan(42))
}
