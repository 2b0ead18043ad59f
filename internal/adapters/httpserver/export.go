package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleOrdersExport streams the order book as a spreadsheet, newest first as
// stored.
func (s *Server) handleOrdersExport(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}

	orders := s.data.Orders(r.Context())

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Order ID", "Client", "Phone", "Items", "Total (TND)", "Status", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		var items []string
		for _, it := range o.Items {
			line := fmt.Sprintf("%dx %s", it.Quantity, it.Name)
			if it.Notes != "" {
				line += " (" + it.Notes + ")"
			}
			items = append(items, line)
		}
		values := []any{o.Date, o.ID, o.CustomerName, o.Phone, strings.Join(items, "; "), o.TotalPrice, string(o.Status), o.Notes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	name := "orders-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("orders export")
	}
}
