package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JonMunkholm/shopseed/internal/logging"
	"github.com/JonMunkholm/shopseed/internal/report"
)

type healthResponse struct {
	Status  string `json:"status"`
	Dialect string `json:"dialect"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Dialect: string(s.service.Store().Dialect()),
	})
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.TableStats(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// reportLine renders money with exactly two decimals.
type reportLine struct {
	CustomerName string `json:"customerName"`
	OrderDate    string `json:"orderDate"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
	Quantity     int    `json:"quantity"`
	TotalPrice   string `json:"totalPrice"`
}

type reportResponse struct {
	Rows  int          `json:"rows"`
	Lines []reportLine `json:"lines"`
}

// handleReport serves the report as JSON, or as a CSV attachment with
// ?format=csv.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format != "" && format != "json" && format != "csv" {
		s.respondError(w, r, fmt.Errorf("unsupported format %q", format))
		return
	}

	lines, err := report.Fetch(r.Context(), s.service.Store())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	logging.FromContext(r.Context()).Debug("report fetched", "rows", len(lines), "format", format)

	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
		if err := report.WriteCSV(w, lines); err != nil {
			logging.FromContext(r.Context()).Error("write report csv", "error", err)
		}
		return
	}

	resp := reportResponse{Rows: len(lines), Lines: make([]reportLine, len(lines))}
	for i, l := range lines {
		resp.Lines[i] = reportLine{
			CustomerName: l.CustomerName,
			OrderDate:    l.OrderDate,
			ProductName:  l.ProductName,
			CategoryName: l.CategoryName,
			Quantity:     l.Quantity,
			TotalPrice:   l.TotalPrice.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
