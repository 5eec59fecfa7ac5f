package excel

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
)

var _ reports.LedgerExporter = (*Exporter)(nil)

// Exporter genera el digest del libro de distribuciones en XLSX.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportXLSX escribe una hoja con encabezados, una fila por entrega y una
// fila final de totales (unidades y valor).
func (e *Exporter) ExportXLSX(companyName string, rows []*entity.Distribution) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Distribuciones"
	f.SetSheetName("Sheet1", sheet)

	title := "Digest de distribuciones"
	if companyName != "" {
		title = fmt.Sprintf("%s - %s", companyName, title)
	}
	f.SetCellValue(sheet, "A1", title)

	headers := []string{"Fecha", "Trabajador", "Producto", "Cantidad", "Precio unitario", "Total", "Entregado por"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	totalUnits := int64(0)
	totalValue := decimal.Zero
	for rIdx, d := range rows {
		row := rIdx + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), d.DistributedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), d.WorkerName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), d.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), d.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), d.PricePerUnit.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), d.TotalAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), d.DistributedBy)

		totalUnits += d.Quantity
		totalValue = totalValue.Add(d.TotalAmount)
	}

	totalRow := len(rows) + 3
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), totalUnits)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), totalValue.InexactFloat64())

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
