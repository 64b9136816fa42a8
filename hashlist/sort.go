package hashlist

import (
	"golang.org/x/exp/constraints"

	"github.com/sunfirefox/hash-accelerated-list/utils"
)

// Sort sorts values of an ordered type in place
func Sort[T constraints.Ordered](l *List[T], order utils.Order) *List[T] {
	return l.SortInPlaceBy(utils.LessBy[T](order))
}
