package contentref

import "testing"

func TestResolve(t *testing.T) {
	const base = "https://gateway.example/ipfs/"
	cases := []struct {
		name string
		ref  string
		want string
	}{
		{name: "bare hash", ref: "QmHash", want: base + "QmHash"},
		{name: "scheme prefixed", ref: "ipfs://QmHash", want: base + "QmHash"},
		{name: "https passthrough", ref: "https://other.example/doc.json", want: "https://other.example/doc.json"},
		{name: "http passthrough", ref: "http://other.example/doc.json", want: "http://other.example/doc.json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(base, tc.ref); got != tc.want {
				t.Fatalf("Resolve(%q, %q) = %q, want %q", base, tc.ref, got, tc.want)
			}
		})
	}
}

func TestRewriteImage(t *testing.T) {
	const canonical = "https://ipfs.io/ipfs/"
	cases := []struct {
		name  string
		image string
		want  string
	}{
		{name: "scheme rewritten", image: "ipfs://QmImage", want: canonical + "QmImage"},
		{name: "web url untouched", image: "https://cdn.example/banner.png", want: "https://cdn.example/banner.png"},
		{name: "empty untouched", image: "", want: ""},
		{name: "bare value untouched", image: "QmImage", want: "QmImage"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RewriteImage(canonical, tc.image); got != tc.want {
				t.Fatalf("RewriteImage(%q) = %q, want %q", tc.image, got, tc.want)
			}
		})
	}
}
