package pod

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrLastRow is returned when removing the only remaining item row.
var ErrLastRow = errors.New("cannot remove the last item row")

// ErrUnknownOption is returned when an option key has no preset.
var ErrUnknownOption = errors.New("unknown beneficiary option")

// Header holds the purchase-order metadata. Every field is free text; dates
// are kept as the user typed them and parsed on demand.
type Header struct {
	PONumber        string `json:"poNumber"`
	LTSANumber      string `json:"ltsaNumber"`
	BeneficiaryName string `json:"beneficiaryName"`
	LTSADescription string `json:"ltsaDescription"`
	DateOfIssue     string `json:"dateOfIssue"`
	SiteDate        string `json:"siteDate"`
	FrancoDate      string `json:"francoDate"`
	Status          string `json:"status"`
}

// LineItem is one row of the items table. Qty and UnitPrice are
// numeric-bearing free text ("10 pcs", "KWD 12.50") parsed by ParseNumber.
type LineItem struct {
	MaximoNo    string `json:"maximoNo"`
	Item        string `json:"item"`
	Description string `json:"description"`
	TPI         string `json:"tpi"`
	Material    string `json:"material"`
	Grade       string `json:"grade"`
	UnitCode    string `json:"unitCode"`
	Qty         string `json:"qty"`
	UnitPrice   string `json:"unitPrice"`
}

// Document is the full purchase-order state, persisted as one atomic value.
//
// Sales is positionally aligned with Items: Sales[i] is the sold quantity for
// Items[i], stored as raw text. Mutators restore the alignment after every
// edit; the item list is never empty.
type Document struct {
	Option string     `json:"option"`
	Header Header     `json:"header"`
	Items  []LineItem `json:"items"`
	Sales  []string   `json:"sales"`
}

// SuggestedStatuses are the advisory workflow labels for Header.Status. Any
// string is accepted as a status; there is no enforced transition order.
var SuggestedStatuses = []string{
	"Supplier PO Released",
	"Under Production",
	"Shipped",
	"Stored",
	"Delivered",
	"Invoiced",
	"Completed",
}

// DefaultDocument returns the hard-coded fresh document: default option with
// its preset applied, one blank item row and its aligned empty sale.
func DefaultDocument() Document {
	preset := builtinPresets[DefaultOption]
	return Document{
		Option: DefaultOption,
		Header: Header{
			BeneficiaryName: preset.Beneficiary,
			LTSANumber:      preset.LTSANumber,
			Status:          SuggestedStatuses[0],
		},
		Items: []LineItem{{}},
		Sales: []string{""},
	}
}

// SalesUnlocked reports whether the sales-editing view is available. Only the
// "Invoiced" and "Completed" labels unlock it; every other status, suggested
// or not, keeps it locked.
func (d *Document) SalesUnlocked() bool {
	return d.Header.Status == "Invoiced" || d.Header.Status == "Completed"
}

// SetOption selects a beneficiary preset and copies its fields into the
// header. All other header fields are untouched. The rule is one-way: editing
// the beneficiary fields directly never changes Option.
func (d *Document) SetOption(presets Presets, key string) error {
	preset, ok := presets.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	d.Option = key
	d.Header.BeneficiaryName = preset.Beneficiary
	d.Header.LTSANumber = preset.LTSANumber
	return nil
}

// headerFields maps the external field keys (the JSON names) to header
// locations, for MergeHeader.
func (d *Document) headerFields() map[string]*string {
	return map[string]*string{
		"poNumber":        &d.Header.PONumber,
		"ltsaNumber":      &d.Header.LTSANumber,
		"beneficiaryName": &d.Header.BeneficiaryName,
		"ltsaDescription": &d.Header.LTSADescription,
		"dateOfIssue":     &d.Header.DateOfIssue,
		"siteDate":        &d.Header.SiteDate,
		"francoDate":      &d.Header.FrancoDate,
		"status":          &d.Header.Status,
	}
}

// MergeHeader shallow-merges the given fields into the header. Field keys are
// the JSON names ("poNumber", "francoDate", ...). Unknown keys are rejected
// before anything is applied.
func (d *Document) MergeHeader(fields map[string]string) error {
	targets := d.headerFields()
	for key := range fields {
		if _, ok := targets[key]; !ok {
			return fmt.Errorf("unknown header field %q", key)
		}
	}
	for key, value := range fields {
		*targets[key] = value
	}
	return nil
}

// UpdateItem replaces one field of one row, leaving every other row and field
// untouched. Field keys are the JSON names ("maximoNo", "qty", ...).
func (d *Document) UpdateItem(index int, field, value string) error {
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("no item row %d", index)
	}
	it := &d.Items[index]
	switch field {
	case "maximoNo":
		it.MaximoNo = value
	case "item":
		it.Item = value
	case "description":
		it.Description = value
	case "tpi":
		it.TPI = value
	case "material":
		it.Material = value
	case "grade":
		it.Grade = value
	case "unitCode":
		it.UnitCode = value
	case "qty":
		it.Qty = value
	case "unitPrice":
		it.UnitPrice = value
	default:
		return fmt.Errorf("unknown item field %q", field)
	}
	return nil
}

// AddRow appends a blank item row and its aligned empty sale.
func (d *Document) AddRow() {
	d.Items = append(d.Items, LineItem{})
	d.syncSales()
}

// RemoveRow removes the row and its aligned sales entry. Removing the last
// remaining row is rejected: the item list is never empty.
func (d *Document) RemoveRow(index int) error {
	if len(d.Items) <= 1 {
		return ErrLastRow
	}
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("no item row %d", index)
	}
	d.Items = slices.Delete(d.Items, index, index+1)
	if index < len(d.Sales) {
		d.Sales = slices.Delete(d.Sales, index, index+1)
	}
	d.syncSales()
	return nil
}

// ClearItems replaces the whole table with a single blank row.
func (d *Document) ClearItems() {
	d.Items = []LineItem{{}}
	d.Sales = []string{""}
}

// SetSold records a sold quantity for a row, clamping the parsed value to
// [0, parsed qty] at the moment of input. When the clamp changes the parsed
// value, the clamped number's string form is stored instead of the raw text;
// otherwise the text passes through verbatim, so "3 pcs" against a qty of 10
// is preserved while "999" is forced to "10".
func (d *Document) SetSold(index int, typed string) error {
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("no item row %d", index)
	}
	d.syncSales()
	raw := ParseNumber(typed)
	limit := ParseNumber(d.Items[index].Qty)
	clamped := raw
	if clamped < 0 {
		clamped = 0
	}
	if clamped > limit {
		clamped = limit
	}
	if clamped != raw {
		d.Sales[index] = strconv.FormatFloat(clamped, 'f', -1, 64)
	} else {
		d.Sales[index] = typed
	}
	return nil
}

// syncSales resizes the sales list to match the item count, preserving
// surviving entries by position: new slots are filled with the empty string,
// extra entries are dropped from the tail. It is idempotent and invoked by
// every mutator that can change the item count.
func (d *Document) syncSales() {
	for len(d.Sales) < len(d.Items) {
		d.Sales = append(d.Sales, "")
	}
	if len(d.Sales) > len(d.Items) {
		d.Sales = d.Sales[:len(d.Items)]
	}
}
