package pod

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// xlsxSheet is the single worksheet an exported workbook contains.
const xlsxSheet = "Purchase Order"

// ExportXLSX writes the Document as a spreadsheet: a header block, the items
// table with computed line totals, and the sold/remaining reconciliation.
// Derived columns are recomputed here the same way the print view does it;
// free-text cells are written verbatim.
func ExportXLSX(d *Document, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("could not prepare worksheet: %w", err)
	}

	var err error
	set := func(cell string, value any) {
		if err == nil {
			err = f.SetCellValue(xlsxSheet, cell, value)
		}
	}

	headerRows := []struct {
		label, value string
	}{
		{"PO Number", d.Header.PONumber},
		{"LTSA Number", d.Header.LTSANumber},
		{"Beneficiary", d.Header.BeneficiaryName},
		{"LTSA Description", d.Header.LTSADescription},
		{"Date of Issue", d.Header.DateOfIssue},
		{"Site Date", d.Header.SiteDate},
		{"Franco Date", d.Header.FrancoDate},
		{"Status", d.Header.Status},
	}
	for i, h := range headerRows {
		set(fmt.Sprintf("A%d", i+1), h.label)
		set(fmt.Sprintf("B%d", i+1), h.value)
	}

	columns := []string{"#", "Maximo No", "Item", "Description", "TPI", "Material",
		"Grade", "Unit", "Qty", "Unit Price", "Line Total", "Sold", "Remaining"}
	letters := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}

	tableTop := len(headerRows) + 2
	for c, title := range columns {
		set(fmt.Sprintf("%s%d", letters[c], tableTop), title)
	}
	for i, it := range d.Items {
		row := tableTop + 1 + i
		values := []any{
			i + 1, it.MaximoNo, it.Item, it.Description, it.TPI, it.Material,
			it.Grade, it.UnitCode, it.Qty, it.UnitPrice,
			FormatMoney(LineTotal(it)),
			Sold(d, i),
			Remaining(d, i),
		}
		for c, v := range values {
			set(fmt.Sprintf("%s%d", letters[c], row), v)
		}
	}

	totalRow := tableTop + 1 + len(d.Items)
	set(fmt.Sprintf("J%d", totalRow), "Grand Total")
	set(fmt.Sprintf("K%d", totalRow), FormatMoney(GrandTotal(d)))
	set(fmt.Sprintf("L%d", totalRow), TotalSold(d))
	set(fmt.Sprintf("M%d", totalRow), TotalRemaining(d))
	if err != nil {
		return fmt.Errorf("could not fill worksheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}
