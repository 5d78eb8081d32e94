// Package util holds small helpers shared by the outbound narrative clients.
package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function for the narrative HTTP clients.
// If no proxy URLs are provided, falls back to environment variables.
// noProxy is a comma-separated list of hosts or ".domain" suffixes that are
// always dialled directly.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := parseNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if bypass.matches(req.URL.Hostname()) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

type noProxyList []string

func parseNoProxy(s string) noProxyList {
	var list noProxyList
	for _, entry := range strings.Split(s, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry != "" {
			list = append(list, entry)
		}
	}
	return list
}

func (l noProxyList) matches(host string) bool {
	host = strings.ToLower(host)
	for _, entry := range l {
		switch {
		case entry == "*":
			return true
		case strings.HasPrefix(entry, "."):
			if strings.HasSuffix(host, entry) || host == entry[1:] {
				return true
			}
		case host == entry:
			return true
		}
	}
	return false
}
