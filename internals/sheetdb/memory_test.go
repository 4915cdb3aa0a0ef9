package sheetdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *MemoryStore {
	m := NewMemoryStore()
	m.CreateTable("Generus", []string{"ID", "Nama", "Desa"})
	return m
}

func TestAppendReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newTestStore()

	// key dikirim dengan casing berbeda dari header
	require.NoError(t, m.Append(ctx, "Generus", Record{"id": "g-1", "NAMA": "Ahmad", "Desa": "Sukolilo"}))

	recs, err := m.ReadAll(ctx, "Generus")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "g-1", recs[0]["ID"])
	assert.Equal(t, "Ahmad", recs[0]["Nama"])
	assert.Equal(t, "Sukolilo", recs[0]["Desa"])
}

func TestAppendUnmatchedHeaderKosong(t *testing.T) {
	ctx := context.Background()
	m := newTestStore()

	require.NoError(t, m.Append(ctx, "Generus", Record{"Nama": "Budi"}))
	recs, err := m.ReadAll(ctx, "Generus")
	require.NoError(t, err)
	// header tanpa pasangan ditulis "" — tidak pernah nil
	assert.Equal(t, "", recs[0]["ID"])
	assert.Equal(t, "", recs[0]["Desa"])
}

func TestUpdateAtMenimpaSatuBarisPenuh(t *testing.T) {
	ctx := context.Background()
	m := newTestStore()
	require.NoError(t, m.Append(ctx, "Generus", Record{"ID": "g-1", "Nama": "Ahmad", "Desa": "Sukolilo"}))

	// field yang tidak dikirim ikut jadi "" (full-row overwrite)
	require.NoError(t, m.UpdateAt(ctx, "Generus", 2, Record{"ID": "g-1", "Nama": "Ahmad Baru"}))

	recs, _ := m.ReadAll(ctx, "Generus")
	assert.Equal(t, "Ahmad Baru", recs[0]["Nama"])
	assert.Equal(t, "", recs[0]["Desa"])
}

func TestDeleteAtMenggeserBaris(t *testing.T) {
	ctx := context.Background()
	m := newTestStore()
	for _, nama := range []string{"A", "B", "C"} {
		require.NoError(t, m.Append(ctx, "Generus", Record{"Nama": nama}))
	}

	// hapus baris kedua (pos 3): C naik ke posisinya
	require.NoError(t, m.DeleteAt(ctx, "Generus", 3))

	recs, _ := m.ReadAll(ctx, "Generus")
	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0]["Nama"])
	assert.Equal(t, "C", recs[1]["Nama"])
}

func TestPosisiDiLuarTabel(t *testing.T) {
	ctx := context.Background()
	m := newTestStore()
	require.NoError(t, m.Append(ctx, "Generus", Record{"Nama": "A"}))

	assert.Error(t, m.UpdateAt(ctx, "Generus", 1, Record{})) // header bukan baris data
	assert.Error(t, m.UpdateAt(ctx, "Generus", 5, Record{}))
	assert.Error(t, m.DeleteAt(ctx, "Generus", 5))
	_, err := m.ReadAll(ctx, "TidakAda")
	assert.Error(t, err)
}
