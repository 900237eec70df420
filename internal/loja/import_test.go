package loja

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadStores_HappyPath(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Nome", "Morada", "Telefone", "Email"},
		[]interface{}{" Loja Porto ", "Rua A 1", "220000000", "Porto@Vidros.pt"},
		[]interface{}{"", "", "", ""},
		[]interface{}{"Loja Braga", "", "", ""},
	)

	stores, bad, err := ReadStores(buf)
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, stores, 2)
	assert.Equal(t, "Loja Porto", stores[0].Store.Name)
	assert.Equal(t, "porto@vidros.pt", stores[0].Store.Email)
	assert.Equal(t, "Rua A 1", stores[0].Store.Address)
	assert.Equal(t, "Loja Braga", stores[1].Store.Name)
	assert.Equal(t, 4, stores[1].Row)
}

func TestReadStores_EnglishHeadersAnyOrder(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"email", "name"},
		[]interface{}{"faro@vidros.pt", "Loja Faro"},
	)
	stores, _, err := ReadStores(buf)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Loja Faro", stores[0].Store.Name)
	assert.Equal(t, "faro@vidros.pt", stores[0].Store.Email)
}

func TestReadStores_ReportsBadRows(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Nome", "Email"},
		[]interface{}{"Loja Porto", "porto@vidros.pt"},
		[]interface{}{"", "semnome@vidros.pt"},
		[]interface{}{"Loja Lisboa", "not-an-email"},
		[]interface{}{"loja porto", ""},
	)
	stores, bad, err := ReadStores(buf)
	require.NoError(t, err)
	assert.Len(t, stores, 1)
	require.Len(t, bad, 3)
	assert.Equal(t, 3, bad[0].Row)
	assert.Equal(t, 4, bad[1].Row)
	assert.Equal(t, 5, bad[2].Row)
	assert.Contains(t, bad[2].Message, "repetida")
}

func TestReadStores_Rejects(t *testing.T) {
	_, _, err := ReadStores(workbook(t, []interface{}{"Nome"}))
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, _, err = ReadStores(workbook(t, []interface{}{"Cidade"}, []interface{}{"Porto"}))
	assert.ErrorContains(t, err, "missing name column")

	_, _, err = ReadStores(strings.NewReader("not a zip"))
	assert.Error(t, err)
}

func TestStoreRequest_Normalize(t *testing.T) {
	_, err := StoreRequest{Name: "  "}.Normalize()
	assert.Error(t, err)

	out, err := StoreRequest{Name: " Loja X ", Email: " X@Y.PT "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Loja X", out.Name)
	assert.Equal(t, "x@y.pt", out.Email)
}

func TestActiveOnly(t *testing.T) {
	got := ActiveOnly([]Store{{ID: "1", Active: true}, {ID: "2"}, {ID: "3", Active: true}})
	require.Len(t, got, 2)
	assert.Equal(t, "3", string(got[1].ID))
}
