package table

import (
	"cmp"
	"strconv"
	"testing"
)

type row struct {
	ID     int
	Name   string
	Points int
}

func testColumns() []Column[row] {
	return []Column[row]{
		{
			Key:     "name",
			Title:   "Name",
			Flex:    true,
			Value:   func(r row) string { return r.Name },
			Compare: func(a, b row) int { return cmp.Compare(a.Name, b.Name) },
		},
		{
			Key:     "points",
			Title:   "Points",
			Width:   6,
			Value:   func(r row) string { return strconv.Itoa(r.Points) },
			Compare: func(a, b row) int { return cmp.Compare(a.Points, b.Points) },
		},
		{
			Key:   "actions",
			Title: "Actions",
			Width: 8,
			Value: func(row) string { return "Delete" },
		},
	}
}

func sampleRows() []row {
	return []row{
		{1, "Write docs", 3},
		{2, "Review PR", 5},
		{3, "write tests", 2},
		{4, "Deploy", 8},
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_DefaultPageSize(t *testing.T) {
	tbl := New(testColumns(), 0)
	if tbl.PageSize() != DefaultPageSize {
		t.Errorf("PageSize() = %d, want %d", tbl.PageSize(), DefaultPageSize)
	}
	if tbl.Len() != 0 || tbl.PageCount() != 1 {
		t.Errorf("empty table Len=%d PageCount=%d", tbl.Len(), tbl.PageCount())
	}
	if _, ok := tbl.Selected(); ok {
		t.Error("Selected() on empty table returned ok")
	}
	if rows := tbl.VisibleRows(); len(rows) != 0 {
		t.Errorf("VisibleRows() = %v, want empty", rows)
	}
}

func TestTable_Filter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"empty", "", []string{"Write docs", "Review PR", "write tests", "Deploy"}},
		{"case-insensitive substring", "WRITE", []string{"Write docs", "write tests"}},
		{"substring in middle", "view", []string{"Review PR"}},
		{"glob prefix", "write*", []string{"Write docs", "write tests"}},
		{"glob is whole-value", "docs*", nil},
		{"glob single char", "d?ploy", []string{"Deploy"}},
		{"no match", "zzz", nil},
		{"broken glob falls back to substring", "[", nil},
		{"surrounding whitespace ignored", "  deploy ", []string{"Deploy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(testColumns(), 10)
			tbl.SetRows(sampleRows())
			tbl.SetFilter("name", tt.filter)

			got := names(tbl.VisibleRows())
			if !equal(got, tt.want) {
				t.Errorf("filter %q = %v, want %v", tt.filter, got, tt.want)
			}
			if tbl.Total() != 4 {
				t.Errorf("Total() = %d, want 4", tbl.Total())
			}
		})
	}
}

func TestTable_FilterSurvivesSetRows(t *testing.T) {
	tbl := New(testColumns(), 10)
	tbl.SetFilter("name", "deploy")
	tbl.SetRows(sampleRows())

	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
	key, text := tbl.Filter()
	if key != "name" || text != "deploy" {
		t.Errorf("Filter() = (%q, %q)", key, text)
	}
}

func TestTable_CycleSort(t *testing.T) {
	tbl := New(testColumns(), 10)
	tbl.SetRows(sampleRows())

	steps := []struct {
		key  string
		dir  SortDir
		want []string
	}{
		{"points", SortAsc, []string{"write tests", "Write docs", "Review PR", "Deploy"}},
		{"points", SortDesc, []string{"Deploy", "Review PR", "Write docs", "write tests"}},
		{"points", SortNone, []string{"Write docs", "Review PR", "write tests", "Deploy"}},
		{"name", SortAsc, []string{"Deploy", "Review PR", "Write docs", "write tests"}},
		{"points", SortAsc, []string{"write tests", "Write docs", "Review PR", "Deploy"}},
	}

	for i, step := range steps {
		dir := tbl.CycleSort(step.key)
		if dir != step.dir {
			t.Errorf("step %d: CycleSort(%q) = %v, want %v", i, step.key, dir, step.dir)
		}
		if got := names(tbl.VisibleRows()); !equal(got, step.want) {
			t.Errorf("step %d: rows = %v, want %v", i, got, step.want)
		}
	}

	if tbl.SortFor("name") != SortNone {
		t.Errorf("SortFor(name) = %v after switching column", tbl.SortFor("name"))
	}
}

func TestTable_SortTiesKeepFetchOrder(t *testing.T) {
	tbl := New(testColumns(), 10)
	tbl.SetRows([]row{
		{1, "b", 3},
		{2, "a", 5},
		{3, "c", 3},
		{4, "d", 3},
	})

	if dir := tbl.CycleSort("points"); dir != SortAsc {
		t.Fatalf("CycleSort() = %v, want SortAsc", dir)
	}
	if got, want := names(tbl.VisibleRows()), []string{"b", "c", "d", "a"}; !equal(got, want) {
		t.Errorf("ascending rows = %v, want %v", got, want)
	}

	tbl.CycleSort("points")
	if got, want := names(tbl.VisibleRows()), []string{"a", "b", "c", "d"}; !equal(got, want) {
		t.Errorf("descending rows = %v, want %v", got, want)
	}
}

func TestTable_CycleSort_Unsortable(t *testing.T) {
	tbl := New(testColumns(), 10)
	tbl.SetRows(sampleRows())

	if dir := tbl.CycleSort("actions"); dir != SortNone {
		t.Errorf("CycleSort(actions) = %v, want none", dir)
	}
	if dir := tbl.CycleSort("missing"); dir != SortNone {
		t.Errorf("CycleSort(missing) = %v, want none", dir)
	}
	if key, _ := tbl.Sort(); key != "" {
		t.Errorf("Sort() key = %q, want empty", key)
	}
}

func TestTable_Pagination(t *testing.T) {
	var rows []row
	for i := 1; i <= 23; i++ {
		rows = append(rows, row{ID: i, Name: "task " + strconv.Itoa(i), Points: i})
	}

	tbl := New(testColumns(), 10)
	tbl.SetRows(rows)

	if tbl.PageCount() != 3 {
		t.Fatalf("PageCount() = %d, want 3", tbl.PageCount())
	}
	if tbl.CanPrevPage() || !tbl.CanNextPage() {
		t.Error("first page navigation flags wrong")
	}

	if !tbl.NextPage() || tbl.Page() != 1 {
		t.Fatalf("NextPage() -> page %d, want 1", tbl.Page())
	}
	if first := tbl.VisibleRows()[0].ID; first != 11 {
		t.Errorf("page 2 first row ID = %d, want 11", first)
	}

	tbl.SetPage(99)
	if tbl.Page() != 2 || len(tbl.VisibleRows()) != 3 {
		t.Errorf("SetPage(99) -> page %d with %d rows", tbl.Page(), len(tbl.VisibleRows()))
	}
	if tbl.NextPage() {
		t.Error("NextPage() on last page returned true")
	}

	if !tbl.PrevPage() || tbl.Page() != 1 {
		t.Errorf("PrevPage() -> page %d, want 1", tbl.Page())
	}
}

func TestTable_FilterClampsPage(t *testing.T) {
	var rows []row
	for i := 1; i <= 25; i++ {
		name := "other"
		if i == 3 {
			name = "needle"
		}
		rows = append(rows, row{ID: i, Name: name})
	}

	tbl := New(testColumns(), 10)
	tbl.SetRows(rows)
	tbl.SetPage(2)

	tbl.SetFilter("name", "needle")
	if tbl.Page() != 0 {
		t.Errorf("Page() = %d after filter shrank rows, want 0", tbl.Page())
	}
	if got := tbl.VisibleRows(); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("VisibleRows() = %v", got)
	}
}

func TestTable_Cursor(t *testing.T) {
	var rows []row
	for i := 1; i <= 12; i++ {
		rows = append(rows, row{ID: i, Name: "r" + strconv.Itoa(i)})
	}
	tbl := New(testColumns(), 5)
	tbl.SetRows(rows)

	tbl.MoveCursor(-1)
	if sel, _ := tbl.Selected(); sel.ID != 1 {
		t.Errorf("cursor moved above first row: %d", sel.ID)
	}

	tbl.MoveCursor(6)
	sel, ok := tbl.Selected()
	if !ok || sel.ID != 7 {
		t.Errorf("Selected() = %d, want 7", sel.ID)
	}
	if tbl.Page() != 1 || tbl.Cursor() != 1 {
		t.Errorf("Page()=%d Cursor()=%d, want 1 and 1", tbl.Page(), tbl.Cursor())
	}

	tbl.MoveCursor(100)
	if sel, _ := tbl.Selected(); sel.ID != 12 {
		t.Errorf("cursor past end = %d, want 12", sel.ID)
	}

	tbl.SetRows(rows[:3])
	if sel, _ := tbl.Selected(); sel.ID != 3 {
		t.Errorf("cursor after shrink = %d, want 3", sel.ID)
	}

	if !tbl.Select(func(r row) bool { return r.ID == 2 }) {
		t.Fatal("Select() did not find row 2")
	}
	if sel, _ := tbl.Selected(); sel.ID != 2 {
		t.Errorf("Select() left cursor on %d", sel.ID)
	}
	if tbl.Select(func(r row) bool { return r.ID == 99 }) {
		t.Error("Select() matched a missing row")
	}
}

func TestSortDir(t *testing.T) {
	tests := []struct {
		dir       SortDir
		str       string
		indicator string
	}{
		{SortNone, "none", ""},
		{SortAsc, "asc", "▲"},
		{SortDesc, "desc", "▼"},
	}
	for _, tt := range tests {
		if tt.dir.String() != tt.str || tt.dir.Indicator() != tt.indicator {
			t.Errorf("%d: String()=%q Indicator()=%q", tt.dir, tt.dir.String(), tt.dir.Indicator())
		}
	}
}

func TestWidths(t *testing.T) {
	cols := testColumns()

	tests := []struct {
		name  string
		total int
		want  []int
	}{
		{"spare goes to flex", 40, []int{22, 6, 8}},
		{"too narrow keeps minimums", 5, []int{1, 6, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Widths(cols, tt.total, 2)
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Widths(%d) = %v, want %v", tt.total, got, tt.want)
					break
				}
			}
		})
	}
}
