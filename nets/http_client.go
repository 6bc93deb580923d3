package nets

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getProxyURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getProxyURL()
				if err != nil || u == nil || !isHTTPProxy(u) {
					return nil, err
				}
				if isLocalAddr(context.Background(), req.URL.Host) {
					return nil, nil
				}
				return u, nil
			},
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: time.Minute,
	}
}
