// Package excel lee y genera libros XLSX con excelize. El importador detecta
// columnas por heurística porque los archivos de stock vienen de planillas
// hechas a mano, sin formato fijo.
package excel

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/stockentry"
)

var _ stockentry.WorkbookParser = (*Importer)(nil)

// Cuántas filas iniciales se inspeccionan buscando la fila de encabezados.
const headerScanRows = 15

// Patrones de encabezado por columna. Se comparan en minúsculas.
var (
	reCategory  = regexp.MustCompile(`product|group|category|dept|class`)
	reItemCode  = regexp.MustCompile(`code|id|sku|part|ref`)
	reName      = regexp.MustCompile(`item desc|description|name|model|title`)
	reStockType = regexp.MustCompile(`stock type|type|classification`)
	reQuantity  = regexp.MustCompile(`qty|quantity|stock|count|good qua|load|total`)
	rePrice     = regexp.MustCompile(`price|dealer|rate|cost|unit`)
	reValue     = regexp.MustCompile(`value|amount|agg`)
	reNumeric   = regexp.MustCompile(`[^0-9.\-]`)
)

// Importer parser heurístico de planillas de stock.
type Importer struct{}

// NewImporter construye el parser.
func NewImporter() *Importer {
	return &Importer{}
}

// columnMap índices de columna detectados (-1 = no encontrada).
type columnMap struct {
	category  int
	itemCode  int
	name      int
	stockType int
	quantity  int
	price     int
	value     int
	headerRow int
}

// Parse recorre todas las hojas del libro, detecta los encabezados de cada una
// y devuelve las filas utilizables. Una fila se conserva si tiene nombre o
// código de ítem; el resto de campos son best-effort.
func (i *Importer) Parse(r io.Reader) ([]dto.UpsertProductRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir workbook: %w", err)
	}
	defer f.Close()

	var items []dto.UpsertProductRequest
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %s: %w", sheet, err)
		}
		items = append(items, parseSheet(rows)...)
	}
	return items, nil
}

func parseSheet(rows [][]string) []dto.UpsertProductRequest {
	if len(rows) == 0 {
		return nil
	}
	cols := detectColumns(rows)

	var items []dto.UpsertProductRequest
	for idx := cols.headerRow + 1; idx < len(rows); idx++ {
		row := rows[idx]
		name := cellAt(row, cols.name)
		code := cellAt(row, cols.itemCode)
		if name == "" && code == "" {
			continue
		}
		if name == "" {
			name = "Unnamed Asset"
		}

		qty := parseInt(cellAt(row, cols.quantity))
		price := parseDecimal(cellAt(row, cols.price))
		value := parseDecimal(cellAt(row, cols.value))
		if value.IsZero() {
			value = decimal.NewFromInt(qty).Mul(price)
		}

		items = append(items, dto.UpsertProductRequest{
			ProductName: name,
			Category:    cellAt(row, cols.category),
			ItemCode:    code,
			StockType:   cellAt(row, cols.stockType),
			TotalStock:  qty,
			DealerPrice: price,
			TotalValue:  value,
		})
	}
	return items
}

// detectColumns busca en las primeras filas la que más encabezados conocidos
// contenga. Si ninguna matchea, asume fila 0 con el orden por defecto.
func detectColumns(rows [][]string) columnMap {
	best := columnMap{category: 0, itemCode: 1, name: 2, stockType: 3, quantity: 4, price: 5, value: 6, headerRow: 0}
	bestScore := 0

	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for idx := 0; idx < limit; idx++ {
		cols := columnMap{category: -1, itemCode: -1, name: -1, stockType: -1, quantity: -1, price: -1, value: -1, headerRow: idx}
		score := 0
		for c, cell := range rows[idx] {
			header := strings.ToLower(strings.TrimSpace(cell))
			if header == "" {
				continue
			}
			switch {
			// El orden importa: "stock type" matchea antes que "stock" (cantidad)
			// y "item description" antes que "item code".
			case cols.stockType == -1 && reStockType.MatchString(header) && strings.Contains(header, "type"):
				cols.stockType = c
				score++
			case cols.name == -1 && reName.MatchString(header):
				cols.name = c
				score++
			case cols.itemCode == -1 && reItemCode.MatchString(header):
				cols.itemCode = c
				score++
			case cols.quantity == -1 && reQuantity.MatchString(header):
				cols.quantity = c
				score++
			case cols.price == -1 && rePrice.MatchString(header):
				cols.price = c
				score++
			case cols.value == -1 && reValue.MatchString(header):
				cols.value = c
				score++
			case cols.category == -1 && reCategory.MatchString(header):
				cols.category = c
				score++
			}
		}
		if score > bestScore {
			best = cols
			bestScore = score
		}
	}
	return best
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseInt coerción numérica tolerante: quita separadores y símbolos
// ("1,250 uds" -> 1250). Valores ilegibles cuentan como cero.
func parseInt(s string) int64 {
	cleaned := reNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return n
	}
	if fl, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int64(fl)
	}
	return 0
}

func parseDecimal(s string) decimal.Decimal {
	cleaned := reNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
