package http

import (
	"errors"
	"fmt"
	"net/http"

	"tracker/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match the operation they are
// routed to in doc: missing parameters, a body of the wrong shape or content
// type. Paths the document does not describe pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", requestErr.Parameter.Name, requestErr.Reason)
		}
		if requestErr.Reason != "" {
			return requestErr.Reason
		}
	}
	return err.Error()
}
