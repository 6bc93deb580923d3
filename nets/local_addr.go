package nets

import (
	"context"
	"net"
)

// IsLocalAddr reports whether addr resolves to a loopback or private address.
// Unresolvable hosts count as remote.
type IsLocalAddr func(ctx context.Context, addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	var resolver net.Resolver
	return func(ctx context.Context, addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}

		if ip := net.ParseIP(host); ip != nil {
			return ip.IsLoopback() || ip.IsPrivate()
		}

		addrs, err := resolver.LookupIPAddr(ctx, host)
		if err != nil {
			return false
		}
		for _, a := range addrs {
			if a.IP.IsLoopback() || a.IP.IsPrivate() {
				return true
			}
		}
		return false
	}
}
