package ethtest

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ToHex formats v as a 0x-prefixed hexadecimal string with no padding.
func ToHex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// ToHexBig formats a big integer as a 0x-prefixed hexadecimal string.
func ToHexBig(v *big.Int) string {
	return "0x" + v.Text(16)
}

// ParseHexUint64 decodes a 0x-prefixed hexadecimal quantity into a decimal
// integer.
func ParseHexUint64(s string) (uint64, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" {
		return 0, errors.New("empty hex quantity")
	}
	value, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse hex quantity %q: %w", s, err)
	}
	return value, nil
}

// ParseHexBig decodes a 0x-prefixed hexadecimal quantity of arbitrary size.
func ParseHexBig(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" {
		return nil, errors.New("empty hex quantity")
	}
	value, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("failed to parse result as hex number: %s", s)
	}
	return value, nil
}
