package logs

import "context"

// Span identifies one unit of work, such as tokenizing a single input.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
