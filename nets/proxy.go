package nets

import (
	"fmt"
	"net"
	"net/url"
	"sync"

	"golang.org/x/net/proxy"
)

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	getAddr GetProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		proxyAddr, err := getAddr()
		if err != nil {
			return nil, err
		}
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil || isHTTPProxy(u) {
			// http proxies are handled by the transport
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, fmt.Errorf("proxy dialer: %w", err)
		}
		dialer, ok := proxyDialer.(Dialer)
		if !ok {
			return nil, fmt.Errorf("proxy dialer for %s does not support contexts", u.Scheme)
		}
		return dialer, nil
	})
}

func isHTTPProxy(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}
