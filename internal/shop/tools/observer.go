package tools

import (
	"context"
	"fmt"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/tool"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

type startedAtKey struct{}

// newToolHandler builds a typed ToolCallbackHandler (not yet wrapped).
func newToolHandler() *callbackHelper.ToolCallbackHandler {
	return &callbackHelper.ToolCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *tool.CallbackInput) context.Context {
			logx.Debug().Str("tool", info.Name).Str("args", input.ArgumentsInJSON).Msg("tool start")
			return context.WithValue(ctx, startedAtKey{}, time.Now())
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *tool.CallbackOutput) context.Context {
			ev := logx.Info().Str("tool", info.Name).Int("response_bytes", len(output.Response))
			if start, ok := ctx.Value(startedAtKey{}).(time.Time); ok {
				ev = ev.Dur("duration", time.Since(start))
			}
			ev.Msg("tool end")
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Warn().Str("tool", info.Name).Err(err).Msg("tool failed")
			return ctx
		},
	}
}

// NewToolCallbacks constructs a callbacks.Handler that logs tool lifecycle events.
// Attach it via compose.WithCallbacks(...) when the tools run inside a graph.
func NewToolCallbacks() einocb.Handler {
	return callbackHelper.NewHandlerHelper().
		Tool(newToolHandler()).
		Handler()
}

// Dispatch runs the named tool with JSON arguments outside of a graph,
// reporting start, end and error to handlers. With no handlers the logging
// handler from NewToolCallbacks is used.
func Dispatch(ctx context.Context, tools []tool.BaseTool, name, argumentsInJSON string, handlers ...einocb.Handler) (string, error) {
	var target tool.InvokableTool
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return "", fmt.Errorf("tool info: %w", err)
		}
		if info.Name != name {
			continue
		}
		inv, ok := t.(tool.InvokableTool)
		if !ok {
			return "", fmt.Errorf("tool %s is not invokable", name)
		}
		target = inv
		break
	}
	if target == nil {
		return "", fmt.Errorf("unknown tool %q", name)
	}

	if len(handlers) == 0 {
		handlers = []einocb.Handler{NewToolCallbacks()}
	}
	ctx = einocb.InitCallbacks(ctx, &einocb.RunInfo{
		Name:      name,
		Type:      "ShopTool",
		Component: components.ComponentOfTool,
	}, handlers...)

	ctx = einocb.OnStart(ctx, &tool.CallbackInput{ArgumentsInJSON: argumentsInJSON})
	out, err := target.InvokableRun(ctx, argumentsInJSON)
	if err != nil {
		einocb.OnError(ctx, err)
		return "", err
	}
	einocb.OnEnd(ctx, &tool.CallbackOutput{Response: out})
	return out, nil
}
