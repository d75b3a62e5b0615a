package tabular

import (
	"testing"
	"time"
)

func validTable() *Table {
	table := NewTable()
	table.AddColumn("sku", []Cell{String("W-1"), String("W-2"), String("W-3")})
	table.AddColumn("name", []Cell{String("Widget"), String("Gadget"), String("Gizmo")})
	table.AddColumn("category", []Cell{String("Tools"), Absent(), String("Toys")})
	table.AddColumn("price", []Cell{Number(19.99), Number(5), Number(7.5)})
	table.AddColumn("quantity", []Cell{Number(10), Number(3), Number(1)})
	d := Date(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	table.AddColumn("tx_date", []Cell{d, d, d})
	return table
}

// TestDropIncompleteRows строка без обязательного поля отбрасывается
func TestDropIncompleteRows(t *testing.T) {
	table := validTable()
	// Ломаем price во второй строке
	col, _ := table.Column("price")
	col.Cells[1] = Absent()

	out := DropIncompleteRows(table)

	if out.RowCount() != 2 {
		t.Fatalf("want 2 surviving rows, got %d", out.RowCount())
	}
	if s, _ := out.Cell("sku", 0).AsString(); s != "W-1" {
		t.Errorf("unexpected first survivor: %q", s)
	}
	if s, _ := out.Cell("sku", 1).AsString(); s != "W-3" {
		t.Errorf("unexpected second survivor: %q", s)
	}
}

// TestDropIncompleteRows_CategoryExempt отсутствие категории не отбрасывает строку
func TestDropIncompleteRows_CategoryExempt(t *testing.T) {
	out := DropIncompleteRows(validTable())
	if out.RowCount() != 3 {
		t.Fatalf("missing category must not drop rows, got %d of 3", out.RowCount())
	}
}

// TestDropIncompleteRows_EmptyKeyFields пустые sku/name после обрезки невалидны
func TestDropIncompleteRows_EmptyKeyFields(t *testing.T) {
	table := validTable()
	col, _ := table.Column("sku")
	col.Cells[0] = String("")

	out := DropIncompleteRows(table)
	if out.RowCount() != 2 {
		t.Fatalf("empty sku must drop the row, got %d rows", out.RowCount())
	}
}

// TestDropIncompleteRows_MissingColumn без обязательной колонки выживших нет
func TestDropIncompleteRows_MissingColumn(t *testing.T) {
	table := NewTable()
	table.AddColumn("sku", []Cell{String("W-1")})
	table.AddColumn("name", []Cell{String("Widget")})

	out := DropIncompleteRows(table)
	if out.RowCount() != 0 {
		t.Fatalf("missing required column means no valid rows, got %d", out.RowCount())
	}
}

// TestClampNonNegative отрицательные значения становятся нулем
func TestClampNonNegative(t *testing.T) {
	table := singleColumn("quantity", Number(-5), Number(3), Absent())
	out := ClampNonNegative(table, "quantity")

	if f, _ := out.Cell("quantity", 0).AsNumber(); f != 0 {
		t.Errorf("want clamped 0, got %v", f)
	}
	if f, _ := out.Cell("quantity", 1).AsNumber(); f != 3 {
		t.Errorf("positive value must be untouched, got %v", f)
	}
	if !out.Cell("quantity", 2).IsAbsent() {
		t.Error("absent cell must not be clamped into existence")
	}
}

// TestValidateRows_OrderMatters сначала отбрасывание, потом клампинг:
// строка с отсутствующей ценой не "чинится"
func TestValidateRows_OrderMatters(t *testing.T) {
	table := validTable()
	priceCol, _ := table.Column("price")
	priceCol.Cells[0] = Absent()
	qtyCol, _ := table.Column("quantity")
	qtyCol.Cells[1] = Number(-5)

	out := ValidateRows(table)

	if out.RowCount() != 2 {
		t.Fatalf("want 2 rows (absent-price row dropped), got %d", out.RowCount())
	}
	// Выжившая строка с отрицательным количеством закламплена
	if f, _ := out.Cell("quantity", 0).AsNumber(); f != 0 {
		t.Errorf("surviving negative quantity must clamp to 0, got %v", f)
	}
}
