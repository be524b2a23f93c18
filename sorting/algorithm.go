package sorting

import "cmp"

// Algorithm names.
const (
	BubbleName    = "bubble"
	InsertionName = "insertion"
	SelectionName = "selection"
	MergeName     = "merge"
	QuickName     = "quick"
)

// Names returns every algorithm name in a stable order.
func Names() []string {
	return []string{BubbleName, InsertionName, SelectionName, MergeName, QuickName}
}

// ByName returns the sort function registered under name.
func ByName[E cmp.Ordered](name string) (func([]E), bool) {
	switch name {
	case BubbleName:
		return Bubble[[]E], true
	case InsertionName:
		return Insertion[[]E], true
	case SelectionName:
		return Selection[[]E], true
	case MergeName:
		return Merge[[]E], true
	case QuickName:
		return Quick[[]E], true
	}

	return nil, false
}
