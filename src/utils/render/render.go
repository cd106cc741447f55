package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderDashboardReport builds a single HTML page with a pie chart of
// assets by status and a bar chart of maintenance tickets by priority.
func RenderDashboardReport(assetsByStatus map[string]float64, ticketsByPriority map[string]float64) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Assets by Status"}))

	pieItems := make([]opts.PieData, 0)
	for k, v := range assetsByStatus {
		pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
	}
	pie.AddSeries("Assets", pieItems)

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Maintenance by Priority"}))

	barItems := make([]opts.BarData, 0)
	labels := make([]string, 0)
	for k, v := range ticketsByPriority {
		barItems = append(barItems, opts.BarData{Value: v})
		labels = append(labels, k)
	}
	bar.SetXAxis(labels).AddSeries("Tickets", barItems)

	page := components.NewPage()
	page.AddCharts(pie, bar)

	var output bytes.Buffer
	if err := page.Render(&output); err != nil {
		return "", err
	}
	return output.String(), nil
}

const printTemplate = `<html>
  <head>
    <title>Print Code - {{.Title}}</title>
    <style>
      body {
        font-family: sans-serif;
        text-align: center;
        padding: 20px;
      }
      .code-container {
        margin: 30px auto;
      }
      .asset-info {
        margin-bottom: 20px;
        font-size: 18px;
        font-weight: bold;
      }
      .asset-value {
        font-size: 14px;
        color: #333;
      }
    </style>
  </head>
  <body>
    <div class="asset-info">{{.Title}}</div>
    <div class="code-container">
      <img src="data:image/png;base64,{{.ImageBase64}}" alt="{{.Value}}" />
    </div>
    <div class="asset-value">{{.Value}}</div>
  </body>
</html>`

// RenderPrintDocument produces the print-formatted page for a code. The
// raster is fully drawn before the document is assembled, so the print
// dialog can never observe a half-drawn symbol.
func RenderPrintDocument(title, value string, pngData []byte) (string, error) {
	tpl, err := template.New("print").Parse(printTemplate)
	if err != nil {
		return "", err
	}

	var output bytes.Buffer
	err = tpl.Execute(&output, map[string]string{
		"Title":       title,
		"Value":       value,
		"ImageBase64": base64.StdEncoding.EncodeToString(pngData),
	})
	if err != nil {
		return "", err
	}
	return output.String(), nil
}

// GeneratePDF generates a PDF from an array of HTML strings
func GeneratePDF(htmlContents []string) (*bytes.Buffer, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	for _, html := range htmlContents {
		page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(html)))
		pdfg.AddPage(page)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}
