package checklistview

import "wristlist/internal/checklist"

// RowKind classifies a menu row.
type RowKind int

const (
	RowAdd RowKind = iota
	RowItem
	RowClear
)

// The row layout is derived from the store on every call and never cached:
//
//	row 0          Add
//	rows 1..n      items, most recent first
//	row n+1        Clear completed, only while something is checked

// RowCount returns the number of menu rows for the current store contents.
func RowCount(s checklist.Store) int {
	n := s.ItemCount()
	if n == 0 {
		return 1
	}
	if s.CheckedCount() > 0 {
		return n + 2
	}
	return n + 1
}

// KindOfRow classifies row.
func KindOfRow(s checklist.Store, row int) RowKind {
	if row == 0 {
		return RowAdd
	}
	if row == s.ItemCount()+1 && s.CheckedCount() > 0 {
		return RowClear
	}
	return RowItem
}

// ItemID maps an item row to its store id. Row 1 is the newest item.
func ItemID(s checklist.Store, row int) int {
	return s.ItemCount() - (row - 1) - 1
}
