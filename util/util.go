package util

import (
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EnsureParentDir creates the directory a file is about to be written into.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0777)
}

// GetKeys returns the map's keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Dedupe keeps the first occurrence of every item, preserving order.
func Dedupe[A comparable](items []A) []A {
	var res []A
	for _, v := range items {
		if !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return res
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
