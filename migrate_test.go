package pod

import (
	"reflect"
	"testing"
)

func TestMigrateLegacyItemsAndSales(t *testing.T) {
	// The canonical legacy fixture: numeric sales where 0 means "unset".
	d, err := migrateDocument([]byte(`{"items":[{"ltsaQty": "5"}], "sales":[0]}`))
	if err != nil {
		t.Fatalf("migrateDocument failed: %v", err)
	}
	if d.Items[0].Qty != "5" {
		t.Errorf("qty = %q, want \"5\" via the ltsaQty fallback", d.Items[0].Qty)
	}
	if d.Sales[0] != "" {
		t.Errorf("sale = %q, want empty string for the legacy zero sentinel", d.Sales[0])
	}
}

func TestMigrateQtyWinsOverLtsaQty(t *testing.T) {
	// The fallback applies only when qty itself is absent.
	d, err := migrateDocument([]byte(`{"items":[{"qty": "7", "ltsaQty": "5"}]}`))
	if err != nil {
		t.Fatalf("migrateDocument failed: %v", err)
	}
	if d.Items[0].Qty != "7" {
		t.Errorf("qty = %q, want \"7\"", d.Items[0].Qty)
	}
}

func TestMigrateNumericFieldsBecomeText(t *testing.T) {
	d, err := migrateDocument([]byte(`{"items":[{"qty": 5, "unitPrice": 12.5}], "sales":[2]}`))
	if err != nil {
		t.Fatalf("migrateDocument failed: %v", err)
	}
	if d.Items[0].Qty != "5" || d.Items[0].UnitPrice != "12.5" {
		t.Errorf("numeric fields not coerced to text: %+v", d.Items[0])
	}
	if d.Sales[0] != "2" {
		t.Errorf("numeric sale = %q, want \"2\"", d.Sales[0])
	}
}

func TestMigrateEmptySourceGivesDefault(t *testing.T) {
	d, err := migrateDocument([]byte(`{}`))
	if err != nil {
		t.Fatalf("migrateDocument failed: %v", err)
	}
	if !reflect.DeepEqual(d, DefaultDocument()) {
		t.Errorf("migrating an empty object = %+v, want the default document", d)
	}
}

func TestMigrateRejectsGarbage(t *testing.T) {
	if _, err := migrateDocument([]byte("{broken")); err == nil {
		t.Errorf("migrateDocument accepted broken JSON")
	}
}

func TestMigrateSalesLongerThanItems(t *testing.T) {
	// Extra sales entries beyond the item count are dropped from the tail.
	d, err := migrateDocument([]byte(`{"items":[{"qty":"1"}], "sales":[1, 2, 3]}`))
	if err != nil {
		t.Fatalf("migrateDocument failed: %v", err)
	}
	if len(d.Sales) != 1 || d.Sales[0] != "1" {
		t.Errorf("sales = %v, want [\"1\"]", d.Sales)
	}
}
