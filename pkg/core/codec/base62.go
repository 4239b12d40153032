// Package codec maps record identifiers to short aliases and back.
//
// The mapping is a plain base62 positional encoding over a fixed alphabet,
// most-significant digit first. Because it is a bijection over non-negative
// integers, two distinct IDs can never produce the same alias and no
// collision-retry loop is needed anywhere in the service.
package codec

import (
	"fmt"
	"math"
	"strings"

	"github.com/pthana/linkshort/pkg/core/domain"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base = int64(len(alphabet))

// Encode converts a non-negative ID to its base62 alias. Zero encodes to "0";
// ids handed out by the store start at 1.
func Encode(id int64) string {
	if id == 0 {
		return "0"
	}

	// int64 max needs at most 11 base62 digits.
	var buf [11]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = alphabet[id%base]
		id /= base
	}
	return string(buf[i:])
}

// Decode converts an alias back to its ID. It fails with domain.ErrInvalidAlias
// when the input is empty or contains a character outside the alphabet.
func Decode(alias string) (int64, error) {
	if alias == "" {
		return 0, fmt.Errorf("%w: empty alias", domain.ErrInvalidAlias)
	}

	var id int64
	for _, c := range []byte(alias) {
		v := strings.IndexByte(alphabet, c)
		if v < 0 {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAlias, alias)
		}
		// An alias whose value exceeds int64 cannot name any record.
		if id > (math.MaxInt64-int64(v))/base {
			return 0, fmt.Errorf("%w: %q overflows", domain.ErrInvalidAlias, alias)
		}
		id = id*base + int64(v)
	}
	return id, nil
}
