package pod

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// This file upgrades older stored shapes into the current Document. Two
// legacy shapes are recognized: both store sales as numbers (where 0 means
// "no sale recorded"), and the older one names the item quantity "ltsaQty"
// instead of "qty".

// migrateDocument parses a legacy serialized document and upgrades it. The
// error reports undecodable JSON; field-level oddities never fail, they
// default to empty strings.
func migrateDocument(data []byte) (Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("could not parse legacy document: %w", err)
	}
	return normalizeDocument(raw, migrateSale), nil
}

// normalizeDocument builds a current-shape Document from a decoded JSON
// value of any recognized shape. The sale function decides how individual
// sales entries are coerced; migration and import differ only there.
func normalizeDocument(raw any, sale func(any) string) Document {
	d := DefaultDocument()
	obj, ok := raw.(map[string]any)
	if !ok {
		return d
	}

	if opt := toText(obj["option"]); opt != "" {
		d.Option = opt
	}

	if h, ok := obj["header"].(map[string]any); ok {
		d.Header = Header{
			PONumber:        toText(h["poNumber"]),
			LTSANumber:      toText(h["ltsaNumber"]),
			BeneficiaryName: toText(h["beneficiaryName"]),
			LTSADescription: toText(h["ltsaDescription"]),
			DateOfIssue:     toText(h["dateOfIssue"]),
			SiteDate:        toText(h["siteDate"]),
			FrancoDate:      toText(h["francoDate"]),
			Status:          toText(h["status"]),
		}
	}

	if items, ok := obj["items"].([]any); ok && len(items) > 0 {
		d.Items = make([]LineItem, 0, len(items))
		for _, item := range items {
			row, _ := item.(map[string]any)
			d.Items = append(d.Items, normalizeItem(row))
		}
	}

	d.Sales = d.Sales[:0]
	if sales, ok := obj["sales"].([]any); ok {
		for _, entry := range sales {
			d.Sales = append(d.Sales, sale(entry))
		}
	}
	d.syncSales()
	return d
}

// normalizeItem copies the recognized fields of one row, defaulting missing
// ones to the empty string. "qty" falls back to the legacy "ltsaQty" name
// only when "qty" itself is absent.
func normalizeItem(row map[string]any) LineItem {
	it := LineItem{
		MaximoNo:    toText(row["maximoNo"]),
		Item:        toText(row["item"]),
		Description: toText(row["description"]),
		TPI:         toText(row["tpi"]),
		Material:    toText(row["material"]),
		Grade:       toText(row["grade"]),
		UnitCode:    toText(row["unitCode"]),
		UnitPrice:   toText(row["unitPrice"]),
	}
	if _, ok := row["qty"]; ok {
		it.Qty = toText(row["qty"])
	} else {
		it.Qty = toText(row["ltsaQty"])
	}
	return it
}

// migrateSale coerces a legacy sales entry to text. The legacy numeric
// encoding could not distinguish "no sale recorded" from "sold zero", so the
// zero sentinel becomes the empty string. That conflation is knowingly
// preserved.
func migrateSale(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// importSale coerces an imported sales entry to text: strings pass through,
// numbers keep their value (including zero), null and anything else become
// the empty string.
func importSale(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// toText renders a decoded JSON scalar as the free text the Document stores.
func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
