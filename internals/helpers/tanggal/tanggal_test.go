package tanggal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string // yyyy-mm-dd, "" berarti harus gagal
	}{
		{"15/08/2015", "2015-08-15"},
		{"2015-08-15", "2015-08-15"},
		{"20 Maret 2010", "2010-03-20"},
		{"20 maret 2010", "2010-03-20"},
		{"20 March 2010", "2010-03-20"},
		{"01 Desember 1999", "1999-12-01"},
		{"  15/08/2015  ", "2015-08-15"},
		{"", ""},
		{"bukan tanggal", ""},
		{"32/01/2020", ""},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.want == "" {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "input %q", tc.in)
	}
}

func TestUmur(t *testing.T) {
	acuan := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	// ulang tahun sudah lewat tahun ini
	lahir, _ := Parse("15/01/2010")
	assert.Equal(t, 14, Umur(lahir, acuan))

	// ulang tahun belum lewat → dikurangi satu
	lahir, _ = Parse("15/08/2015")
	assert.Equal(t, 8, Umur(lahir, acuan))

	// tepat hari ulang tahun
	lahir, _ = Parse("20/03/2010")
	assert.Equal(t, 14, Umur(lahir, acuan))
}

func TestUmurString(t *testing.T) {
	acuan := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "8", UmurString("15/08/2015", acuan))
	// kosong dan tidak valid sama-sama jatuh ke sentinel, tidak meng-echo input
	assert.Equal(t, Sentinel, UmurString("", acuan))
	assert.Equal(t, Sentinel, UmurString("abc", acuan))
}

func TestParseTimestamp(t *testing.T) {
	ts := ParseTimestamp("05/02/2024 13:45:00")
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 13, ts.Hour())

	// hanya tanggal = fallback ke parser biasa
	assert.Equal(t, 2024, ParseTimestamp("05/02/2024").Year())

	// kosong/tidak valid = zero time (dianggap paling tua saat sorting)
	assert.True(t, ParseTimestamp("").IsZero())
	assert.True(t, ParseTimestamp("???").IsZero())
}

func TestFormatIndo(t *testing.T) {
	d := time.Date(2010, 3, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "20 Maret 2010", FormatIndo(d))
}
