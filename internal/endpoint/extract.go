// Package endpoint recognizes media manifest endpoints in observed network traffic.
package endpoint

import (
	"net/url"
	"strings"
)

const (
	// TrackingPixelMarker identifies analytics beacons that carry the real
	// manifest URL in a query parameter.
	TrackingPixelMarker = "ping.gif"

	// NestedURLParam is the beacon query parameter holding the percent-encoded manifest URL.
	NestedURLParam = "mu"

	// ManifestSuffix marks an HLS manifest request.
	ManifestSuffix = ".m3u8"
)

// Extract decides whether observedURL encodes a media endpoint and returns the
// canonical endpoint when it does.
//
// Beacon requests (ping.gif with a mu parameter) yield the decoded nested URL.
// Any other URL containing the manifest suffix is returned unchanged.
// Malformed input is never an error, just no match.
func Extract(observedURL string) (string, bool) {
	if nested, ok := fromTrackingPixel(observedURL); ok {
		return nested, true
	}

	if strings.Contains(observedURL, ManifestSuffix) {
		return observedURL, true
	}

	return "", false
}

// fromTrackingPixel returns the manifest URL nested in a beacon's mu parameter.
// The value is form-decoded and then percent-decoded once more; beacons carry
// the nested URL encoded twice. Invalid escapes are kept literally.
func fromTrackingPixel(observedURL string) (string, bool) {
	if !strings.Contains(observedURL, TrackingPixelMarker) {
		return "", false
	}

	u, err := url.Parse(observedURL)
	if err != nil || !strings.Contains(u.Path, TrackingPixelMarker) {
		return "", false
	}

	for _, pair := range strings.Split(u.RawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if unescape(key, true) != NestedURLParam {
			continue
		}
		if value = unescape(value, true); value == "" {
			continue
		}
		return unescape(value, false), true
	}

	return "", false
}

// unescape decodes %XX sequences leniently: malformed sequences are left as
// they are. With plusAsSpace, '+' decodes to a space as in form values.
func unescape(s string, plusAsSpace bool) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case s[i] == '+' && plusAsSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
