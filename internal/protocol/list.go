package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// EmptyList is the encoding of a list with no entries
const EmptyList = "[]"

const listDelim = ","

// DecodeList decodes a bracketed list such as "[2,5,9]" or "[]".
// One leading "[" and one trailing "]" are stripped; empty content yields an
// empty slice.
func DecodeList(s string) []string {
	content := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, listDelim)
}

// EncodeList is the inverse of DecodeList
func EncodeList(items []string) string {
	return "[" + strings.Join(items, listDelim) + "]"
}

// DecodeIntList decodes a bracketed list of integers such as side-pots
func DecodeIntList(s string) ([]int, error) {
	items := DecodeList(s)
	out := make([]int, len(items))
	for i, item := range items {
		n, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("%w %q in list %q", ErrInvalidInteger, item, s)
		}
		out[i] = n
	}
	return out, nil
}
