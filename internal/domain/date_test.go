package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, "20240305", d.Compact())

	empty, err := domain.ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = domain.ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Due domain.Date `json:"due"`
	}

	t.Run("round trips a date", func(t *testing.T) {
		out, err := json.Marshal(payload{Due: domain.NewDate(2024, time.March, 5)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"due":"2024-03-05"}`, string(out))

		var in payload
		require.NoError(t, json.Unmarshal(out, &in))
		assert.Equal(t, "2024-03-05", in.Due.String())
	})

	t.Run("zero date is null", func(t *testing.T) {
		out, err := json.Marshal(payload{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"due":null}`, string(out))
	})

	t.Run("null and empty string decode to zero", func(t *testing.T) {
		var in payload
		require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &in))
		assert.True(t, in.Due.IsZero())
		require.NoError(t, json.Unmarshal([]byte(`{"due":""}`), &in))
		assert.True(t, in.Due.IsZero())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		var in payload
		assert.Error(t, json.Unmarshal([]byte(`{"due":"2024-03-05T10:00:00Z"}`), &in))
		assert.Error(t, json.Unmarshal([]byte(`{"due":20240305}`), &in))
	})
}

func TestDate_SQL(t *testing.T) {
	v, err := domain.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = domain.NewDate(2024, time.March, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", v)

	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "2024-03-05", "2024-03-05"},
		{"bytes", []byte("2024-03-05"), "2024-03-05"},
		{"timestamp string", "2024-03-05 00:00:00+00:00", "2024-03-05"},
		{"time", time.Date(2024, 3, 5, 15, 4, 5, 0, time.UTC), "2024-03-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d domain.Date
			require.NoError(t, d.Scan(tt.input))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d domain.Date
	assert.Error(t, d.Scan(42))
}
