package utils

import "golang.org/x/exp/constraints"

// Order is a sort direction
type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func GetZero[T any]() T {
	var result T
	return result
}

// LessBy returns a less function that sorts values of an ordered type
// in the given direction
func LessBy[T constraints.Ordered](order Order) func(a, b T) bool {
	if order == DescOrder {
		return func(a, b T) bool { return a > b }
	}
	return func(a, b T) bool { return a < b }
}
