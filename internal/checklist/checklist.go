// Package checklist holds the flat list of checklist items the watch face
// operates on.
//
// Items are addressed by a 0-based id in insertion order: the oldest item
// is 0 and the most recently added item is ItemCount()-1. Deleting
// completed items compacts the ids of the survivors.
package checklist

import (
	"fmt"
	"unicode/utf8"
)

// Item is a single checklist entry.
type Item struct {
	Name      string
	IsChecked bool
}

// Store is the checklist collaborator consumed by the views.
type Store interface {
	Init() error
	Deinit() error

	ItemCount() int
	CheckedCount() int
	ItemByID(id int) (Item, error)

	AddItem(name string) error
	ToggleChecked(id int) error
	// DeleteCompleted removes every checked item and returns how many were
	// removed.
	DeleteCompleted() (int, error)
}

// Reloader is implemented by stores whose backing data can change outside
// the process.
type Reloader interface {
	Reload() error
}

// Limits bound what a store accepts.
type Limits struct {
	MaxItems      int
	MaxNameLength int
}

// DefaultLimits match the capacity of the original watch app.
var DefaultLimits = Limits{MaxItems: 30, MaxNameLength: 64}

// DeletedMessage formats the confirmation shown after clearing completed
// items.
func DeletedMessage(n int) string {
	if n == 1 {
		return fmt.Sprintf("%d Item Deleted", n)
	}
	return fmt.Sprintf("%d Items Deleted", n)
}

// truncateName cuts name to at most max runes.
func truncateName(name string, max int) string {
	if max <= 0 || utf8.RuneCountInString(name) <= max {
		return name
	}
	runes := []rune(name)
	return string(runes[:max])
}
