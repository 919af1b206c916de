package ports

import "github.com/jhoicas/Backoffice-api/internal/application/dto"

// ImageProcessor normaliza las imágenes subidas antes de guardarlas.
type ImageProcessor interface {
	// Square recorta (crop opcional, si no el cuadrado central) y escala a size x size. Devuelve JPEG.
	Square(data []byte, crop *dto.PhotoCrop, size int) ([]byte, error)
	// Fit reduce la imagen para que su lado mayor no supere maxSide. Devuelve JPEG.
	Fit(data []byte, maxSide int) ([]byte, error)
}

// SheetReader lee la primera hoja de un archivo tabular (xlsx, xls o csv).
// La primera fila devuelta es la de encabezados.
type SheetReader interface {
	ReadRows(filename string, data []byte) ([][]string, error)
}

// ReportExporter genera los archivos descargables del back-office.
type ReportExporter interface {
	EmployeesXLSX(items []dto.EmployeeResponse) ([]byte, error)
	IncomeStatementXLSX(companyName string, st *dto.IncomeStatementDTO) ([]byte, error)
}

// IncomeStatementPDF genera el estado de resultados en PDF.
type IncomeStatementPDF interface {
	IncomeStatementPDF(companyName string, st *dto.IncomeStatementDTO) ([]byte, error)
}
