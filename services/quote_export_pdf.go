package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the quotation PDF using maroto/v2 and returns
// the raw bytes. Layout is a fixed top-to-bottom cursor: title block, the
// two info blocks side by side, the four itemized sections, the summary
// block and the amount-in-words footer.
func GenerateQuotePDF(data *QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteInfoBlocks(m, data)
	for _, section := range data.Sections {
		addQuoteSection(m, section)
	}
	addQuoteSummary(m, data)
	addQuoteAmountInWords(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// WriteQuotePDF renders the document and persists it under cacheDir as
// Quotation_<event name>_<function code>.pdf, spaces in the event name
// replaced with underscores. It returns the absolute file path once the
// file is fully written.
func WriteQuotePDF(data *QuoteExportData, cacheDir string) (string, error) {
	pdfBytes, err := GenerateQuotePDF(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache dir: %w", err)
	}

	filename := fmt.Sprintf("Quotation_%s_%s.pdf",
		strings.ReplaceAll(data.EventName, " ", "_"), data.FunctionCode)
	path := filepath.Join(cacheDir, filename)

	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("failed to write quotation file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve quotation path: %w", err)
	}
	return abs, nil
}

// addQuoteHeader adds the company name, the QUOTATION label and a rule.
func addQuoteHeader(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.Company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	if data.Company.Address != "" || data.Company.Phone != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(joinNonEmpty([]string{data.Company.Address, data.Company.Phone}, " | "), props.Text{
						Size:  8,
						Align: align.Center,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("QUOTATION", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(2).Add(
			line.NewCol(12, props.Line{
				Thickness: 0.4,
				Color:     &props.Color{Red: 33, Green: 37, Blue: 41},
			}),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteInfoBlocks adds the client block (left) and the event block
// (right), both anchored to the same top row.
func addQuoteInfoBlocks(m core.Maroto, data *QuoteExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("CLIENT", labelStyle)),
			col.New(6).Add(text.New("EVENT", labelStyle)),
		),
	)

	infoRows := []struct {
		left, right string
	}{
		{fmtField("Name", data.EventName), fmtField("Guests", data.NoOfGuest)},
		{fmtField("Contact", data.ContactNo), fmtField("Date", data.EventDate)},
		{fmtField("Venue", data.Venue), fmtField("Time", data.EventTime)},
		{fmtField("Director", data.Director), fmtField("Function Code", data.FunctionCode)},
	}
	for _, ir := range infoRows {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(ir.left, valueStyle)),
				col.New(6).Add(text.New(ir.right, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuoteSection renders one itemized section: bold header, one row per
// item with every other row shaded (zero-indexed even rows), then a bold
// section total. Sections with no items contribute nothing at all.
func addQuoteSection(m core.Maroto, section QuoteSection) {
	if len(section.Items) == 0 {
		return
	}

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := &props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(strings.ToUpper(section.Title), headerText)).WithStyle(headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range section.Items {
		bodyText := props.Text{Size: 8, Align: align.Center}
		bodyTextLeft := props.Text{Size: 8, Align: align.Left}
		bodyTextRight := props.Text{Size: 8, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 0 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colIndex := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText))
		colDesc := col.New(5).Add(text.New(item.Description, bodyTextLeft))
		colQty := col.New(2).Add(text.New(formatQty(item.Quantity), bodyTextRight))
		colRate := col.New(2).Add(text.New(FormatRs(item.UnitPrice), bodyTextRight))
		colAmount := col.New(2).Add(text.New(FormatRs(item.Amount()), bodyTextRight))

		if cellStyle != nil {
			colIndex = colIndex.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colRate = colRate.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colIndex, colDesc, colQty, colRate, colAmount),
		)
	}

	totalStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	m.AddRows(
		row.New(7).Add(
			col.New(10).Add(text.New(fmt.Sprintf("%s Total:", section.Title), totalStyle)),
			col.New(2).Add(text.New(FormatRs(section.Total()), totalStyle)),
		),
	)

	m.AddRows(row.New(2))
}

// addQuoteSummary adds the grand total, advance and balance block. The
// grand total is the event's stored total; the balance is total minus
// advance and prints negative when the advance exceeds the total.
func addQuoteSummary(m core.Maroto, data *QuoteExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}

	summaryRows := []struct {
		label string
		value float64
	}{
		{"Grand Total", data.GrandTotal},
		{"Advance Received", data.Advance},
		{"Balance", data.Balance()},
	}
	for _, sr := range summaryRows {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(sr.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatRs(sr.value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuoteAmountInWords adds the amount-in-words footer inside a shaded row.
func addQuoteAmountInWords(m core.Maroto, data *QuoteExportData) {
	if data.AmountInWords == "" {
		return
	}

	wordsBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	wordsCell := &props.Cell{BackgroundColor: wordsBg}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			).WithStyle(wordsCell),
		),
	)
}

// formatQty renders a quantity: whole numbers without decimals, fractional
// values with two. A zero quantity renders empty like every other amount.
func formatQty(qty float64) string {
	return FormatAmount(qty)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
