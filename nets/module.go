package nets

import (
	"cmp"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/configs"
	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/modes"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

type ProxyAddr string

var proxyFlag = cmds.Var[string]("proxy", "proxy for fetching http inputs, socks5:// or http://")

// GetProxyAddr resolves the proxy from the command line, then config, then environment.
type GetProxyAddr func() (ProxyAddr, error)

var proxyConfigKeys = []string{
	"proxy_addr",
	"http_proxy",
	"socks_proxy",
}

func (Module) GetProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) GetProxyAddr {
	return sync.OnceValues(func() (ret ProxyAddr, err error) {
		defer func() {
			if err == nil && ret != "" {
				logger.Info("proxy", "addr", ret)
			}
		}()

		if *proxyFlag != "" {
			return ProxyAddr(*proxyFlag), nil
		}

		if mode == modes.ModeDevelopment {
			return "", nil
		}

		for _, key := range proxyConfigKeys {
			addr, err := configs.First[ProxyAddr](loader, key)
			if err != nil {
				return "", err
			}
			if addr != "" {
				return addr, nil
			}
		}

		return ProxyAddr(cmp.Or(
			os.Getenv("ALL_PROXY"),
			os.Getenv("all_proxy"),
			os.Getenv("HTTP_PROXY"),
			os.Getenv("http_proxy"),
			os.Getenv("SOCKS_PROXY"),
			os.Getenv("socks_proxy"),
		)), nil
	})
}
