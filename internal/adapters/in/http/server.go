package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/generated/servers"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgOrderAdded    = "New order added successfully"
	msgPartnerAdded  = "New delivery partner added successfully"
	msgPairAdded     = "New order-partner pair added successfully"
	msgPartnerDelete = "Partner removed successfully"
	msgOrderDelete   = "Order removed successfully"
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	// Command handlers
	AddOrder      commands.AddOrderCommandHandler
	AddPartner    commands.AddPartnerCommandHandler
	AssignOrder   commands.AssignOrderCommandHandler
	DeletePartner commands.DeletePartnerCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler

	// Query handlers
	GetOrder               queries.GetOrderQueryHandler
	GetPartner             queries.GetPartnerQueryHandler
	GetPartnerOrderCount   queries.GetPartnerOrderCountQueryHandler
	GetPartnerOrders       queries.GetPartnerOrdersQueryHandler
	GetAllOrders           queries.GetAllOrdersQueryHandler
	GetUnassignedCount     queries.GetUnassignedOrderCountQueryHandler
	GetLastDeliveryTime    queries.GetLastDeliveryTimeQueryHandler
	GetOrdersLeftAfterTime queries.GetOrdersLeftAfterTimeQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
//
// Unknown ids are answered leniently by default: null, 0, an empty list,
// "00:00" or a plain success message. With strictNotFound they produce 404.
type Server struct {
	h              Handlers
	strictNotFound bool
	logger         *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, strictNotFound bool, logger *slog.Logger) *Server {
	return &Server{
		h:              h,
		strictNotFound: strictNotFound,
		logger:         logger.With("component", "http_server"),
	}
}

// AddOrder handles POST /orders/add-order.
func (s *Server) AddOrder(ctx echo.Context) error {
	var body servers.AddOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderCommand(body.Id, body.DeliveryTime)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.h.AddOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failure(ctx, err, "Failed to add order")
	}

	return ctx.String(http.StatusCreated, msgOrderAdded)
}

// AddPartner handles POST /orders/add-partner/{partnerId}.
func (s *Server) AddPartner(ctx echo.Context, partnerID servers.PartnerId) error {
	cmd, err := commands.NewAddPartnerCommand(partnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if err = s.h.AddPartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failure(ctx, err, "Failed to add delivery partner")
	}

	return ctx.String(http.StatusCreated, msgPartnerAdded)
}

// AddOrderPartnerPair handles PUT /orders/add-order-partner-pair.
func (s *Server) AddOrderPartnerPair(ctx echo.Context, params servers.AddOrderPartnerPairParams) error {
	cmd, err := commands.NewAssignOrderCommand(params.OrderId, params.PartnerId)
	if err != nil {
		return badRequest(ctx, "Invalid pair: "+err.Error())
	}

	err = s.h.AssignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to pair order with partner", func() error {
			return ctx.String(http.StatusCreated, msgPairAdded)
		})
	}

	return ctx.String(http.StatusCreated, msgPairAdded)
}

// GetOrderById handles GET /orders/get-order-by-id/{orderId}.
func (s *Server) GetOrderById(ctx echo.Context, orderID servers.OrderId) error { //nolint:revive // generated name
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to retrieve order", func() error {
			return ctx.JSON(http.StatusOK, nil)
		})
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:           o.ID,
		DeliveryTime: o.DeliveryTime,
	})
}

// GetPartnerById handles GET /orders/get-partner-by-id/{partnerId}.
func (s *Server) GetPartnerById(ctx echo.Context, partnerID servers.PartnerId) error { //nolint:revive // generated name
	query, err := queries.NewGetPartnerQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	p, err := s.h.GetPartner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to retrieve delivery partner", func() error {
			return ctx.JSON(http.StatusOK, nil)
		})
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryPartner{
		Id:             p.ID,
		NumberOfOrders: p.NumberOfOrders,
	})
}

// GetOrderCountByPartnerId handles GET /orders/get-order-count-by-partner-id/{partnerId}.
func (s *Server) GetOrderCountByPartnerId(ctx echo.Context, partnerID servers.PartnerId) error { //nolint:revive // generated name
	query, err := queries.NewGetPartnerOrderCountQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	count, err := s.h.GetPartnerOrderCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to count orders", func() error {
			return ctx.JSON(http.StatusOK, 0)
		})
	}

	return ctx.JSON(http.StatusOK, count)
}

// GetOrdersByPartnerId handles GET /orders/get-orders-by-partner-id/{partnerId}.
func (s *Server) GetOrdersByPartnerId(ctx echo.Context, partnerID servers.PartnerId) error { //nolint:revive // generated name
	query, err := queries.NewGetPartnerOrdersQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	ids, err := s.h.GetPartnerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to retrieve orders", func() error {
			return ctx.JSON(http.StatusOK, []string{})
		})
	}

	return ctx.JSON(http.StatusOK, ids)
}

// GetAllOrders handles GET /orders/get-all-orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	ids, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.failure(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, ids)
}

// GetCountOfUnassignedOrders handles GET /orders/get-count-of-unassigned-orders.
func (s *Server) GetCountOfUnassignedOrders(ctx echo.Context) error {
	count, err := s.h.GetUnassignedCount.Handle(
		ctx.Request().Context(),
		queries.NewGetUnassignedOrderCountQuery(),
	)
	if err != nil {
		return s.failure(ctx, err, "Failed to count unassigned orders")
	}

	return ctx.JSON(http.StatusOK, count)
}

// GetCountOfOrdersLeftAfterGivenTime handles
// GET /orders/get-count-of-orders-left-after-given-time/{partnerId}?time=HH:MM.
func (s *Server) GetCountOfOrdersLeftAfterGivenTime(
	ctx echo.Context,
	partnerID servers.PartnerId,
	params servers.GetCountOfOrdersLeftAfterGivenTimeParams,
) error {
	query, err := queries.NewGetOrdersLeftAfterTimeQuery(partnerID, params.Time)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	count, err := s.h.GetOrdersLeftAfterTime.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to count orders", func() error {
			return ctx.JSON(http.StatusOK, 0)
		})
	}

	return ctx.JSON(http.StatusOK, count)
}

// GetLastDeliveryTime handles GET /orders/get-last-delivery-time/{partnerId}.
func (s *Server) GetLastDeliveryTime(ctx echo.Context, partnerID servers.PartnerId) error {
	query, err := queries.NewGetLastDeliveryTimeQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	last, err := s.h.GetLastDeliveryTime.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orNotFound(ctx, err, "Failed to compute last delivery time", func() error {
			return ctx.String(http.StatusOK, "00:00")
		})
	}

	return ctx.String(http.StatusOK, last)
}

// DeletePartnerById handles DELETE /orders/delete-partner-by-id/{partnerId}.
func (s *Server) DeletePartnerById(ctx echo.Context, partnerID servers.PartnerId) error { //nolint:revive // generated name
	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.h.DeletePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.orNotFound(ctx, err, "Failed to remove delivery partner", func() error {
			return ctx.String(http.StatusOK, msgPartnerDelete)
		})
	}

	return ctx.String(http.StatusOK, msgPartnerDelete)
}

// DeleteOrderById handles DELETE /orders/delete-order-by-id/{orderId}.
func (s *Server) DeleteOrderById(ctx echo.Context, orderID servers.OrderId) error { //nolint:revive // generated name
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.orNotFound(ctx, err, "Failed to remove order", func() error {
			return ctx.String(http.StatusOK, msgOrderDelete)
		})
	}

	return ctx.String(http.StatusOK, msgOrderDelete)
}

// orNotFound answers a not-found error with the lenient response by default and
// with 404 in strict mode. Other errors go through failure.
func (s *Server) orNotFound(ctx echo.Context, err error, message string, lenient func() error) error {
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return s.failure(ctx, err, message)
	}
	if !s.strictNotFound {
		return lenient()
	}
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: err.Error(),
	})
}

// failure maps an application error onto a status code.
func (s *Server) failure(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, message+": "+err.Error())
	case errors.Is(err, context.Canceled):
		return err
	}

	s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
