package pdfsvc

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	pkgerrors "github.com/pkg/errors"

	"github.com/iiskills/shiksha/core/certificate"
)

// Generator renders a certificate to a writer; an interface so handlers can be
// tested without producing real PDF bytes.
type Generator interface {
	WriteCertificate(w io.Writer, cert certificate.Certificate) error
}

type CertificateGenerator struct {
	appName  string
	fontName string
}

var _ Generator = (*CertificateGenerator)(nil)

func NewCertificateGenerator(appName string) *CertificateGenerator {
	return &CertificateGenerator{appName: appName, fontName: "Helvetica"}
}

// WriteCertificate renders cert as a single landscape A4 page.
func (g *CertificateGenerator) WriteCertificate(w io.Writer, cert certificate.Certificate) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Certificate %s", cert.SerialNumber), false)
	pdf.SetAuthor(g.appName, false)
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// page border
	pdf.SetLineWidth(1)
	pdf.Rect(10, 10, 277, 190, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(13, 13, 271, 184, "D")

	pdf.SetY(35)
	pdf.SetFont(g.fontName, "B", 28)
	pdf.CellFormat(0, 14, "CERTIFICATE OF COMPLETION", "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "", 13)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 20)
	pdf.CellFormat(0, 12, cert.HolderPhone, "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "", 13)
	pdf.CellFormat(0, 8, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, cert.CourseName, "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "", 12)
	if cert.Score.Valid && cert.PassLevel.Valid {
		result := fmt.Sprintf("with a score of %d%% (%s level)",
			cert.Score.Int, strings.Title(cert.PassLevel.String))
		pdf.CellFormat(0, 8, result, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Issued on %s", cert.IssuedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")

	pdf.SetY(-45)
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Serial: %s", cert.SerialNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, g.appName, "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return pkgerrors.Wrap(err, "rendering certificate")
	}
	return nil
}
