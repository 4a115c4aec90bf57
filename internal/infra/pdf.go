package infra

// pdf.go — period report export using go-pdf/fpdf. Portrait A4 with:
//   - Business name header and period line
//   - Section I:   summary table (one row per bucket + grand total)
//   - Section II:  sales and returns detail
//   - Section III: cash advances detail
//   - Section IV:  phone top-ups detail
// Detail tables stripe alternate rows; every page carries a numbered footer.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sijj2003/app-tienda/internal/dto"
	"github.com/Sijj2003/app-tienda/internal/model"
	"github.com/Sijj2003/app-tienda/internal/moneda"

	"github.com/go-pdf/fpdf"
)

const (
	reporteMargen = 12.0
	filaAlto      = 6.0
)

// GenerarReportePDF writes the period report to ruta (parent directory is
// created if needed).
func GenerarReportePDF(
	nombreNegocio string,
	resumen *dto.ResumenReporteResponse,
	ventas []model.Venta,
	avances []model.AvanceEfectivo,
	recargas []model.RecargaTelefonica,
	ruta string,
) error {
	if err := os.MkdirAll(filepath.Dir(ruta), 0o755); err != nil {
		return fmt.Errorf("pdf: creando directorio destino: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(reporteMargen, reporteMargen, reporteMargen)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Página %d de {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*reporteMargen

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, nombreNegocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Reporte de Operaciones", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Período: %s al %s", resumen.Desde, resumen.Hasta), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Sección I: resumen ───────────────────────────────────────────────────
	seccion(pdf, contentW, "I. Resumen del Período")

	filas := [][2]string{
		{"Ventas (Neto)", moneda.USD(resumen.VentasNeto)},
		{"Devoluciones", "-" + moneda.USD(resumen.Devoluciones)},
		{"Avances de Efectivo (Entregado)", moneda.USD(resumen.AvancesEntregado)},
		{"Ganancia por Avances", moneda.USD(resumen.GananciaAvances)},
		{"Recargas Telefónicas (Base)", moneda.USD(resumen.RecargasBase)},
		{"Ganancia por Recargas", moneda.USD(resumen.GananciaRecargas)},
	}
	colDesc := contentW * 0.65
	colVal := contentW * 0.35

	pdf.SetFont("Helvetica", "", 9)
	for i, fila := range filas {
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(colDesc, filaAlto, fila[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colVal, filaAlto, fila[1], "1", 1, "R", fill, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colDesc, 7, "TOTAL GENERAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colVal, 7, moneda.USD(resumen.TotalGeneral), "1", 1, "R", false, 0, "")

	if resumen.TasaDisponible {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colDesc, filaAlto, fmt.Sprintf("Equivalente en Bs (tasa de cierre %s)", moneda.Formatear(resumen.TasaCierre, "es-VE")), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colVal, filaAlto, moneda.Bs(resumen.TotalBs), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// ── Sección II: ventas y devoluciones ────────────────────────────────────
	seccion(pdf, contentW, "II. Ventas y Devoluciones")
	anchoV := []float64{contentW * 0.18, contentW * 0.14, contentW * 0.18, contentW * 0.20, contentW * 0.14, contentW * 0.16}
	encabezado(pdf, anchoV, []string{"Fecha", "Hora", "Total USD", "Total Bs", "Tasa", "Estado"})
	pdf.SetFont("Helvetica", "", 8)
	for i, v := range ventas {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		total := moneda.USD(v.TotalVenta)
		if v.Estado == model.EstadoDevolucion {
			total = "-" + total
		}
		pdf.CellFormat(anchoV[0], filaAlto, v.CreatedAt.Format("02/01/2006"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoV[1], filaAlto, v.CreatedAt.Format("15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoV[2], filaAlto, total, "1", 0, "R", fill, 0, "")
		pdf.CellFormat(anchoV[3], filaAlto, moneda.Bs(v.MontoTotalBs), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(anchoV[4], filaAlto, moneda.Formatear(v.TasaBCV, "es-VE"), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(anchoV[5], filaAlto, v.Estado, "1", 1, "C", fill, 0, "")
	}
	if len(ventas) == 0 {
		sinMovimientos(pdf, contentW)
	}
	pdf.Ln(5)

	// ── Sección III: avances ─────────────────────────────────────────────────
	seccion(pdf, contentW, "III. Avances de Efectivo")
	anchoA := []float64{contentW * 0.20, contentW * 0.14, contentW * 0.22, contentW * 0.22, contentW * 0.22}
	encabezado(pdf, anchoA, []string{"Fecha", "Hora", "Entregado Bs", "Comisión Bs", "Método"})
	pdf.SetFont("Helvetica", "", 8)
	for i, a := range avances {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(anchoA[0], filaAlto, a.CreatedAt.Format("02/01/2006"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoA[1], filaAlto, a.CreatedAt.Format("15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoA[2], filaAlto, moneda.Bs(a.MontoEntregado), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(anchoA[3], filaAlto, moneda.Bs(a.Comision), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(anchoA[4], filaAlto, a.MetodoPago, "1", 1, "C", fill, 0, "")
	}
	if len(avances) == 0 {
		sinMovimientos(pdf, contentW)
	}
	pdf.Ln(5)

	// ── Sección IV: recargas ─────────────────────────────────────────────────
	seccion(pdf, contentW, "IV. Recargas Telefónicas")
	anchoR := []float64{contentW * 0.18, contentW * 0.12, contentW * 0.22, contentW * 0.24, contentW * 0.24}
	encabezado(pdf, anchoR, []string{"Fecha", "Hora", "Número", "Base Bs", "Comisión Bs"})
	pdf.SetFont("Helvetica", "", 8)
	for i, r := range recargas {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(anchoR[0], filaAlto, r.CreatedAt.Format("02/01/2006"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoR[1], filaAlto, r.CreatedAt.Format("15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoR[2], filaAlto, r.NumeroTelefono, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(anchoR[3], filaAlto, moneda.Bs(r.MontoBase), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(anchoR[4], filaAlto, moneda.Bs(r.Comision), "1", 1, "R", fill, 0, "")
	}
	if len(recargas) == 0 {
		sinMovimientos(pdf, contentW)
	}

	if err := pdf.OutputFileAndClose(ruta); err != nil {
		return fmt.Errorf("pdf: escribiendo archivo: %w", err)
	}
	return nil
}

func seccion(pdf *fpdf.Fpdf, contentW float64, titulo string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, titulo, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func encabezado(pdf *fpdf.Fpdf, anchos []float64, titulos []string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 220, 220)
	for i, t := range titulos {
		salto := 0
		if i == len(titulos)-1 {
			salto = 1
		}
		pdf.CellFormat(anchos[i], filaAlto, t, "1", salto, "C", true, 0, "")
	}
}

func sinMovimientos(pdf *fpdf.Fpdf, contentW float64) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, filaAlto, "Sin movimientos en el período", "1", 1, "C", false, 0, "")
}
