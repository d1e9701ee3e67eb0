package contentref

import "strings"

// Scheme is the content-addressed URI prefix used in campaign metadata
// references. A compliant gateway resolves `Scheme + hash` and
// `<gateway-base> + hash` to the same immutable document.
const Scheme = "ipfs://"

// IsWebURL reports whether ref is already a resolvable HTTP(S) URL.
func IsWebURL(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}

// Resolve maps a metadata reference onto one gateway base.
// Already-resolved web URLs pass through unchanged, scheme-prefixed
// references have the scheme substituted with the gateway base, and anything
// else is treated as a bare hash appended to the base.
func Resolve(gatewayBase, ref string) string {
	switch {
	case IsWebURL(ref):
		return ref
	case strings.HasPrefix(ref, Scheme):
		return gatewayBase + strings.TrimPrefix(ref, Scheme)
	default:
		return gatewayBase + ref
	}
}

// RewriteImage pins a metadata image to the canonical gateway. Only
// scheme-prefixed references are rewritten; empty strings and resolved URLs
// pass through so the result never retains the content-addressed scheme.
func RewriteImage(canonicalGateway, image string) string {
	if strings.HasPrefix(image, Scheme) {
		return canonicalGateway + strings.TrimPrefix(image, Scheme)
	}
	return image
}
