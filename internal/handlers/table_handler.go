package handlers

import (
	"context"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// TableHandler handles the table routes.
type TableHandler struct {
	tableService services.TableService
}

// NewTableHandler creates a new table handler.
func NewTableHandler(tableService services.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// HandleList handles GET /tables.
func (h *TableHandler) HandleList(ctx context.Context, req *router.Request) (*router.Response, error) {
	result, err := h.tableService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, result), nil
}

// HandleCreate handles POST /tables. A "name" field is explicitly rejected
// as unsupported before the typed decode.
func (h *TableHandler) HandleCreate(ctx context.Context, req *router.Request) (*router.Response, error) {
	if bodyHasField(req, "name") {
		return nil, services.NewError(services.KindInvalidInput, "Unsupported field: name")
	}

	var body models.CreateTableRequest
	if err := decodeBody(req, &body); err != nil {
		return nil, err
	}

	result, err := h.tableService.Create(ctx, &body)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, result), nil
}

// HandleGet handles GET /tables/{tableId}.
func (h *TableHandler) HandleGet(ctx context.Context, req *router.Request) (*router.Response, error) {
	tableID := req.PathParameters["tableId"]
	if tableID == "" {
		return nil, services.NewError(services.KindInvalidInput, "Missing path parameter: tableId")
	}

	result, err := h.tableService.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, result), nil
}
