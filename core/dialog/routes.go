package dialog

import (
	"strconv"
	"strings"
)

// Route tags carried inside button callbacks.
const (
	RouteListWorks   = "list-works"
	RouteViewWork    = "view-work"
	RouteViewChapter = "view-chapter"
	RouteAddWork     = "add-work"
	RouteAddChapter  = "add-chapter"
	RouteDeleteWork  = "delete-work"
)

// EncodeRoute joins a route tag and its integer argument into one token,
// e.g. "view-work:7".
func EncodeRoute(tag string, arg int64) string {
	return tag + ":" + strconv.FormatInt(arg, 10)
}

// SplitRoute splits a route token into its tag and optional integer
// argument. Tokens without a colon carry no argument.
func SplitRoute(token string) (tag string, arg int64, hasArg bool) {
	tag, raw, found := strings.Cut(token, ":")
	if !found {
		return tag, 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return tag, 0, false
	}
	return tag, n, true
}
