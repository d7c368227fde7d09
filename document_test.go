package pod

import (
	"errors"
	"testing"
)

func TestDefaultDocument(t *testing.T) {
	d := DefaultDocument()
	if d.Option != DefaultOption {
		t.Errorf("default option = %q, want %q", d.Option, DefaultOption)
	}
	if len(d.Items) != 1 || len(d.Sales) != 1 {
		t.Fatalf("default document has %d items and %d sales, want 1 and 1", len(d.Items), len(d.Sales))
	}
	if d.Header.BeneficiaryName == "" || d.Header.LTSANumber == "" {
		t.Errorf("default document did not apply the default preset: %+v", d.Header)
	}
	if d.SalesUnlocked() {
		t.Errorf("a fresh document must not unlock sales editing")
	}
}

func TestSetOptionTouchesOnlyBeneficiaryFields(t *testing.T) {
	presets := DefaultPresets()
	d := DefaultDocument()
	d.Header.PONumber = "PO-7731"
	d.Header.Status = "Shipped"
	d.Items[0].Description = "gate valve"

	if err := d.SetOption(presets, "koc"); err != nil {
		t.Fatalf("SetOption(koc) failed: %v", err)
	}
	want := presets["koc"]
	if d.Header.BeneficiaryName != want.Beneficiary || d.Header.LTSANumber != want.LTSANumber {
		t.Errorf("beneficiary fields not updated: %+v", d.Header)
	}
	if d.Header.PONumber != "PO-7731" || d.Header.Status != "Shipped" {
		t.Errorf("SetOption touched unrelated header fields: %+v", d.Header)
	}
	if d.Items[0].Description != "gate valve" {
		t.Errorf("SetOption touched item rows")
	}

	if err := d.SetOption(presets, "nope"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("SetOption(nope) = %v, want ErrUnknownOption", err)
	}
	if d.Option != "koc" {
		t.Errorf("a rejected SetOption changed the option to %q", d.Option)
	}
}

func TestMergeHeaderDoesNotChangeOption(t *testing.T) {
	d := DefaultDocument()
	err := d.MergeHeader(map[string]string{
		"beneficiaryName": "Someone Else Entirely",
		"francoDate":      "2026-09-01",
	})
	if err != nil {
		t.Fatalf("MergeHeader failed: %v", err)
	}
	if d.Header.BeneficiaryName != "Someone Else Entirely" {
		t.Errorf("merge did not apply: %+v", d.Header)
	}
	if d.Option != DefaultOption {
		t.Errorf("direct header edit changed the option to %q", d.Option)
	}

	if err := d.MergeHeader(map[string]string{"noSuchField": "x"}); err == nil {
		t.Errorf("MergeHeader accepted an unknown field")
	}
}

func TestRowMutationsKeepSalesAligned(t *testing.T) {
	d := DefaultDocument()
	d.Items[0].Qty = "5"
	if err := d.SetSold(0, "2"); err != nil {
		t.Fatalf("SetSold failed: %v", err)
	}

	d.AddRow()
	d.AddRow()
	if len(d.Sales) != len(d.Items) {
		t.Fatalf("after AddRow: %d sales for %d items", len(d.Sales), len(d.Items))
	}
	if d.Sales[0] != "2" || d.Sales[1] != "" || d.Sales[2] != "" {
		t.Errorf("AddRow disturbed sales entries: %v", d.Sales)
	}

	if err := d.RemoveRow(1); err != nil {
		t.Fatalf("RemoveRow(1) failed: %v", err)
	}
	if len(d.Items) != 2 || len(d.Sales) != 2 {
		t.Fatalf("after RemoveRow: %d items, %d sales", len(d.Items), len(d.Sales))
	}
	if d.Sales[0] != "2" {
		t.Errorf("RemoveRow disturbed the surviving sale: %v", d.Sales)
	}
}

func TestRemoveLastRowIsRejected(t *testing.T) {
	d := DefaultDocument()
	d.Items[0].Description = "keep me"
	if err := d.RemoveRow(0); !errors.Is(err, ErrLastRow) {
		t.Fatalf("RemoveRow on a single-row document = %v, want ErrLastRow", err)
	}
	if len(d.Items) != 1 || d.Items[0].Description != "keep me" {
		t.Errorf("rejected RemoveRow still changed the document: %+v", d.Items)
	}
}

func TestClearItems(t *testing.T) {
	d := DefaultDocument()
	d.AddRow()
	d.AddRow()
	d.Sales[1] = "3"
	d.ClearItems()
	if len(d.Items) != 1 || len(d.Sales) != 1 {
		t.Fatalf("ClearItems left %d items, %d sales", len(d.Items), len(d.Sales))
	}
	if (d.Items[0] != LineItem{}) || d.Sales[0] != "" {
		t.Errorf("ClearItems did not reset to a blank row: %+v %v", d.Items[0], d.Sales)
	}
}

func TestSetSoldClamping(t *testing.T) {
	d := DefaultDocument()
	d.Items[0].Qty = "10"

	tests := []struct {
		typed string
		want  string
	}{
		{"999", "10"},    // above qty: clamped numeric string replaces the text
		{"3 pcs", "3 pcs"}, // parses to 3, in range: raw text preserved
		{"-4", "0"},      // below zero: clamped
		{"10", "10"},     // exactly at the limit: unchanged
		{"", ""},         // parses to 0, in range: preserved
		{"2.5", "2.5"},
	}
	for _, tc := range tests {
		if err := d.SetSold(0, tc.typed); err != nil {
			t.Fatalf("SetSold(%q) failed: %v", tc.typed, err)
		}
		if d.Sales[0] != tc.want {
			t.Errorf("SetSold(%q) stored %q, want %q", tc.typed, d.Sales[0], tc.want)
		}
	}

	if err := d.SetSold(5, "1"); err == nil {
		t.Errorf("SetSold accepted an out-of-range row")
	}
}

func TestUpdateItem(t *testing.T) {
	d := DefaultDocument()
	if err := d.UpdateItem(0, "qty", "10 pcs"); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if d.Items[0].Qty != "10 pcs" {
		t.Errorf("UpdateItem did not apply: %+v", d.Items[0])
	}
	if err := d.UpdateItem(0, "bogus", "x"); err == nil {
		t.Errorf("UpdateItem accepted an unknown field")
	}
	if err := d.UpdateItem(3, "qty", "1"); err == nil {
		t.Errorf("UpdateItem accepted an out-of-range row")
	}
}

func TestSyncSalesIsIdempotent(t *testing.T) {
	d := DefaultDocument()
	d.AddRow()
	d.Sales[1] = "7"
	before := append([]string(nil), d.Sales...)
	d.syncSales()
	d.syncSales()
	if len(d.Sales) != len(before) {
		t.Fatalf("syncSales changed the length with no item-count change")
	}
	for i := range before {
		if d.Sales[i] != before[i] {
			t.Errorf("syncSales altered entry %d: %q -> %q", i, before[i], d.Sales[i])
		}
	}
}

func TestStatusIsAdvisory(t *testing.T) {
	d := DefaultDocument()
	for _, s := range []string{"whatever", "Invoiced but disputed", ""} {
		if err := d.MergeHeader(map[string]string{"status": s}); err != nil {
			t.Errorf("status %q rejected: %v", s, err)
		}
		if d.SalesUnlocked() {
			t.Errorf("status %q unexpectedly unlocked sales editing", s)
		}
	}
	for _, s := range []string{"Invoiced", "Completed"} {
		d.Header.Status = s
		if !d.SalesUnlocked() {
			t.Errorf("status %q did not unlock sales editing", s)
		}
	}
}
