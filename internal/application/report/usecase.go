package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// SalesReportGenerator puerto para renderizar el reporte de ventas.
// Lo implementa pdf.MarotoReportGenerator.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, generatedAt time.Time, rows []*repository.SalesRow) ([]byte, error)
}

// SalesReportUseCase genera la representación descargable (PDF) del agregado
// de ventas por libro.
type SalesReportUseCase struct {
	orderRepo repository.OrderRepository
	generator SalesReportGenerator
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(orderRepo repository.OrderRepository, generator SalesReportGenerator) *SalesReportUseCase {
	return &SalesReportUseCase{orderRepo: orderRepo, generator: generator}
}

// Download arma el agregado de ventas y lo renderiza.
// Retorna (pdfBytes, filename, nil); un agregado vacío genera igualmente el
// documento con la leyenda de "sin ventas".
func (uc *SalesReportUseCase) Download(ctx context.Context) ([]byte, string, error) {
	rows, err := uc.orderRepo.AllSales()
	if err != nil {
		return nil, "", fmt.Errorf("report: consultar ventas: %w", err)
	}
	now := time.Now()
	pdfBytes, err := uc.generator.GenerateSalesReport(ctx, now, rows)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	filename := "ventas-" + now.Format("20060102") + ".pdf"
	return pdfBytes, filename, nil
}
