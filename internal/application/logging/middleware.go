package logging

import (
	"context"
	"fmt"

	"github.com/andrescamacho/mediator-go/internal/application/mediator"
)

// Middleware returns dispatch middleware that logs every request passing
// through the mediator, using the logger carried in the context.
func Middleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		logger := LoggerFromContext(ctx)

		requestType := fmt.Sprintf("%T", request)
		logger.Log("debug", "dispatching request", map[string]interface{}{
			"request": requestType,
		})

		response, err := next(ctx, request)
		if err != nil {
			logger.Log("error", "request failed", map[string]interface{}{
				"request": requestType,
				"error":   err.Error(),
			})
			return nil, err
		}

		logger.Log("debug", "request handled", map[string]interface{}{
			"request": requestType,
		})
		return response, nil
	}
}
