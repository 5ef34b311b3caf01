package dialog

import "testing"

func TestEncodeRoute(t *testing.T) {
	if got := EncodeRoute(RouteViewWork, 7); got != "view-work:7" {
		t.Fatalf("EncodeRoute = %s", got)
	}
}

func TestSplitRoute(t *testing.T) {
	cases := []struct {
		token  string
		tag    string
		arg    int64
		hasArg bool
	}{
		{"view-work:7", "view-work", 7, true},
		{"list-works", "list-works", 0, false},
		{"add-chapter:42", "add-chapter", 42, true},
		{"view-work:abc", "view-work", 0, false},
		{"", "", 0, false},
	}
	for _, c := range cases {
		tag, arg, hasArg := SplitRoute(c.token)
		if tag != c.tag || arg != c.arg || hasArg != c.hasArg {
			t.Errorf("SplitRoute(%q) = (%s, %d, %v), want (%s, %d, %v)",
				c.token, tag, arg, hasArg, c.tag, c.arg, c.hasArg)
		}
	}
}

func TestRouteTokenRoundTrip(t *testing.T) {
	token := EncodeRoute(RouteDeleteWork, 123)
	tag, arg, hasArg := SplitRoute(token)
	if tag != RouteDeleteWork || arg != 123 || !hasArg {
		t.Fatalf("round-trip = (%s, %d, %v)", tag, arg, hasArg)
	}
}
