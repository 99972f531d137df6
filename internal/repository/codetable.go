package repository

import (
	"jma-area-api/internal/models"
)

// CodeTable is the in-memory municipality lookup table. It is built once and
// never modified afterwards, so it is safe for concurrent reads.
type CodeTable struct {
	codeInfo  []models.CodeInfo
	muniCodes []int
}

// Len returns the number of municipalities in the table.
func (t *CodeTable) Len() int {
	return len(t.muniCodes)
}

// At returns a copy of the i-th entry.
func (t *CodeTable) At(i int) models.CodeInfo {
	return t.codeInfo[i]
}

// MuniCodes returns a copy of the code column in table order.
func (t *CodeTable) MuniCodes() []int {
	return append([]int(nil), t.muniCodes...)
}

// Search returns the index of code in the table, or the index of the nearest lower code when absent.
func (t *CodeTable) Search(code int) int {
	return Search(t.muniCodes, code)
}

// FindByMuniCode returns the entry for code. ok is false when the table holds no exact match.
func (t *CodeTable) FindByMuniCode(code int) (info models.CodeInfo, ok bool) {
	i := t.Search(code)
	if i < 0 || t.muniCodes[i] != code {
		return models.CodeInfo{}, false
	}
	return t.codeInfo[i], true
}

// Search runs a binary search over the ascending codes. It returns the index of
// code when present; otherwise the index of the largest element smaller than
// code, which is -1 when code is below every element.
func Search(codes []int, code int) int {
	left, right := 0, len(codes)-1
	for left <= right {
		mid := (left + right) / 2
		switch {
		case code < codes[mid]:
			right = mid - 1
		case code > codes[mid]:
			left = mid + 1
		default:
			return mid
		}
	}
	return left - 1
}

// firstUnsorted returns the first index whose code is not greater than its predecessor, or -1.
func firstUnsorted(codes []int) int {
	for i := 1; i < len(codes); i++ {
		if codes[i] <= codes[i-1] {
			return i
		}
	}
	return -1
}
