package checker

import "strings"

// splitDestination splits a link destination into its raw scheme, path,
// and fragment components. Unlike net/url parsing it never
// percent-decodes and never fails: a malformed escape stays in the path
// byte-for-byte so the destination can be checked against the
// filesystem exactly as written.
func splitDestination(dest string) (scheme, path, fragment string) {
	rest := dest

	if before, frag, ok := strings.Cut(rest, "#"); ok {
		rest, fragment = before, frag
	}

	if i := strings.IndexByte(rest, ':'); i > 0 && isSchemeName(rest[:i]) {
		scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}

	// An authority component marks a remote reference; the path is
	// whatever follows it.
	if after, ok := strings.CutPrefix(rest, "//"); ok {
		if j := strings.IndexByte(after, '/'); j >= 0 {
			rest = after[j:]
		} else {
			rest = ""
		}
	}

	if before, _, ok := strings.Cut(rest, "?"); ok {
		rest = before
	}

	return scheme, rest, fragment
}

// isSchemeName reports whether s is a valid URI scheme name: an ASCII
// letter followed by letters, digits, '+', '-', or '.'.
func isSchemeName(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if isAlpha(c) || ('0' <= c && c <= '9') || c == '+' || c == '-' || c == '.' {
			continue
		}
		return false
	}
	return true
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
