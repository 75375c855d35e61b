package logging

import "context"

type contextKey string

const ctxKeyRunID contextKey = "load_run_id"

// ContextWithRunID tags ctx with the id of the current load run.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRunID, id)
}

// RunIDFromContext extracts the load run id from context.
func RunIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRunID).(string); ok {
		return v
	}
	return ""
}
