package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourcompany/distribucion-api/internal/infrastructure/excel"
)

// buildWorkbook arma un XLSX en memoria con las filas dadas.
func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := "Sheet1"
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImporter_DetectaEncabezadosEstandar(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Category", "Item Code", "Description", "Stock Type", "Quantity", "Dealer Price", "Total Value"},
		{"Construcción", "CEM-01", "Cemento Gris", "Regular", 40, 25.5, 1020},
		{"Construcción", "ARE-02", "Arena Fina", "Regular", 100, 3, 300},
	})

	items, err := excel.NewImporter().Parse(buf)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Cemento Gris", items[0].ProductName)
	assert.Equal(t, "CEM-01", items[0].ItemCode)
	assert.Equal(t, "Construcción", items[0].Category)
	assert.Equal(t, int64(40), items[0].TotalStock)
	assert.True(t, items[0].DealerPrice.InexactFloat64() == 25.5)
}

func TestImporter_EncabezadoNoEnPrimeraFila(t *testing.T) {
	// Las planillas reales traen título y filas en blanco antes del encabezado.
	buf := buildWorkbook(t, [][]any{
		{"INVENTARIO GENERAL 2026"},
		{},
		{"Group", "Part No", "Item Description", "Qty", "Rate"},
		{"Repuestos", "R-100", "Filtro de aceite", 12, 8.75},
	})

	items, err := excel.NewImporter().Parse(buf)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Filtro de aceite", items[0].ProductName)
	assert.Equal(t, "R-100", items[0].ItemCode)
	assert.Equal(t, int64(12), items[0].TotalStock)
}

func TestImporter_FilasSinNombreNiCodigo_SeDescartan(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Category", "Code", "Name", "Qty"},
		{"A", "X-1", "Producto válido", 5},
		{"B", "", "", 99}, // sin nombre ni código: fuera
		{"", "Y-2", "", 3}, // solo código: se conserva con nombre por defecto
	})

	items, err := excel.NewImporter().Parse(buf)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Producto válido", items[0].ProductName)
	assert.Equal(t, "Unnamed Asset", items[1].ProductName)
	assert.Equal(t, "Y-2", items[1].ItemCode)
}

func TestImporter_CoercionNumericaTolerante(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Quantity", "Price"},
		{"Cable", "1,250 uds", "$ 19.99"},
		{"Tubo", "ilegible", ""},
	})

	items, err := excel.NewImporter().Parse(buf)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(1250), items[0].TotalStock)
	assert.Equal(t, "19.99", items[0].DealerPrice.String())

	assert.Equal(t, int64(0), items[1].TotalStock, "valores ilegibles cuentan como cero")
	assert.True(t, items[1].DealerPrice.IsZero())
}

func TestImporter_TotalValueCalculadoSiFalta(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Name", "Qty", "Price"},
		{"Ladrillo", 100, 2},
	})

	items, err := excel.NewImporter().Parse(buf)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "200", items[0].TotalValue.String(), "sin columna de valor: stock × precio")
}

func TestImporter_ArchivoCorrupto(t *testing.T) {
	_, err := excel.NewImporter().Parse(bytes.NewReader([]byte("esto no es un xlsx")))
	assert.Error(t, err)
}
