package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/nets"
	"github.com/reusee/toks/tokens"
)

// Load reads an input by reference: "-" is stdin, http and https URLs are fetched, anything else is a file path.
type Load func(ctx context.Context, ref string) (*Source, error)

func (Module) Load(
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (_ *Source, err error) {
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()

		var raw []byte
		switch {

		case ref == "-":
			raw, err = io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			ref = "<stdin>"

		case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
			raw, err = fetch(ctx, client, ref)
			if err != nil {
				return nil, err
			}

		default:
			raw, err = os.ReadFile(ref)
			if err != nil {
				return nil, err
			}

		}

		text, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
		logger.DebugContext(ctx, "source loaded",
			"location", ref,
			"bytes", len(raw),
		)
		return NewSource(tokens.Location(ref), text), nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return raw, nil
}
