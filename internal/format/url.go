package format

import "github.com/fredbi/uri"

// IsValidURL reports whether text parses as an absolute RFC 3986 URI. Parse
// failures yield false. Input a browser would repair first, such as raw
// spaces or underscores in the host, is not valid.
func IsValidURL(text string) bool {
	_, err := uri.Parse(text)
	return err == nil
}
