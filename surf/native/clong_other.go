//go:build !windows

package native

import "strconv"

// On Unix a C long is pointer sized.
const cLongWidth = strconv.IntSize / 8

type cLong = int
