package routesapi

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParam is one key/value pair of a request query string.
type QueryParam struct {
	Key   string
	Value any
}

// BuildRequestURL appends params to base in order, "?" before the first and "&" before
// each following pair. Values are rendered with %v and written as-is.
func BuildRequestURL(base string, params ...QueryParam) string {
	return buildURL(base, false, params)
}

// BuildEncodedRequestURL is BuildRequestURL with keys and values query-escaped.
func BuildEncodedRequestURL(base string, params ...QueryParam) string {
	return buildURL(base, true, params)
}

func buildURL(base string, encode bool, params []QueryParam) string {
	var sb strings.Builder
	sb.WriteString(base)
	for i, p := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		key, value := p.Key, fmt.Sprintf("%v", p.Value)
		if encode {
			key, value = url.QueryEscape(key), url.QueryEscape(value)
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	return sb.String()
}
