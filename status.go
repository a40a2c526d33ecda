package apidocopenapi

import (
	"strconv"
	"strings"
)

// Group labels default to these upstream when no status is documented.
const (
	DefaultSuccessGroup = "Success 200"
	DefaultErrorGroup   = "Error 4xx"
)

// StatusCode derives a response key from a group label by dropping a leading
// "Success " or "Error " and upper-casing the rest: "Error 4xx" -> "4XX".
// Labels outside that convention pass through upper-cased.
func StatusCode(label string) string {
	for _, prefix := range []string{"Success ", "Error "} {
		if rest, ok := strings.CutPrefix(label, prefix); ok {
			return strings.ToUpper(rest)
		}
	}
	return strings.ToUpper(label)
}

// statusClass returns the hundreds digit of a status key, accepting both
// numeric codes ("404") and OpenAPI ranges ("4XX"). ok is false for keys that
// are neither.
func statusClass(code string) (class int, ok bool) {
	if len(code) == 3 && code[1:] == "XX" && code[0] >= '1' && code[0] <= '5' {
		return int(code[0] - '0'), true
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < 100 || n > 599 {
		return 0, false
	}
	return n / 100, true
}

// IsShared reports whether responses with code are stored once under
// components.responses and referenced from every operation. Only 400-499
// qualify; the range key 4XX of the default "Error 4xx" group stands for all
// of them and is shared too.
func IsShared(code string) bool {
	class, ok := statusClass(code)
	return ok && class == 4
}
