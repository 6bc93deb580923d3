package logs

import (
	"context"
	"fmt"
)

// WrapSpan annotates err with the span of ctx, so failures can be matched with log lines.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanFrom(ctx)
	if span == "" {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}
