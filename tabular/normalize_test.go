package tabular

import "testing"

// TestCleanColumnName проверяет канонизацию заголовков
func TestCleanColumnName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Product SKU", "product_sku"},
		{" Qty ", "qty"},
		{"Title!", "title"},
		{"  Tx Date  ", "tx_date"},
		{"PRICE", "price"},
		{"price_usd", "price_usd"},
		{"", ""},
		{"!!!", ""},
		{"a b c", "a_b_c"},
		{"Количество", ""}, // все символы вне [0-9a-zA-Z_] отбрасываются
		{"qty2", "qty2"},
	}

	for _, c := range cases {
		got := CleanColumnName(c.raw)
		if got != c.want {
			t.Errorf("CleanColumnName(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

// TestCleanColumnName_Idempotent повторная канонизация ничего не меняет
func TestCleanColumnName_Idempotent(t *testing.T) {
	headers := []string{"Product SKU", " Qty ", "Title!", "", "already_clean", "Mixed Case 42"}
	for _, h := range headers {
		once := CleanColumnName(h)
		twice := CleanColumnName(once)
		if once != twice {
			t.Errorf("CleanColumnName not idempotent for %q: %q != %q", h, once, twice)
		}
	}
}

// TestCleanColumns_PreservesCells данные ячеек не меняются
func TestCleanColumns_PreservesCells(t *testing.T) {
	table := NewTable()
	table.AddColumn("Product SKU", []Cell{String("W-1"), String("W-2")})
	table.AddColumn(" Qty ", []Cell{String("10"), Absent()})

	cleaned := CleanColumns(table)

	if got := cleaned.ColumnNames(); got[0] != "product_sku" || got[1] != "qty" {
		t.Fatalf("unexpected column names: %v", got)
	}

	if s, _ := cleaned.Cell("product_sku", 0).AsString(); s != "W-1" {
		t.Errorf("cell data changed: got %q", s)
	}
	if !cleaned.Cell("qty", 1).IsAbsent() {
		t.Error("absent cell should stay absent after CleanColumns")
	}

	// Исходная таблица не тронута
	if table.Columns[0].Name != "Product SKU" {
		t.Error("CleanColumns must not mutate its input")
	}
}
