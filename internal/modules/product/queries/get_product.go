package queries

import (
	"context"
	"net/http"

	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type GetProductQuery struct {
	ProductID uuid.UUID
}

func (q GetProductQuery) Validate() error {
	var errs core.FieldErrors

	if q.ProductID == uuid.Nil {
		errs.Add("id", "id is required")
	}

	return errs.AsError()
}

// GetProductResponse reports absence as a flag, not a failure.
type GetProductResponse struct {
	Product product.DTO
	Found   bool
}

func HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, core.ErrBody(err))
		return
	}

	query := GetProductQuery{ProductID: productID}

	response, err := mediator.Send[GetProductQuery, GetProductResponse](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	if !response.Found {
		core.WriteNotFound(w, r, nil)
		return
	}

	core.WriteOK(w, r, response.Product)
}

type GetProductQueryHandler struct {
	repository product.Repository
}

func NewGetProductQueryHandler(repository product.Repository) *GetProductQueryHandler {
	return &GetProductQueryHandler{repository}
}

func (h *GetProductQueryHandler) Handle(
	ctx context.Context,
	request GetProductQuery,
) (GetProductResponse, error) {
	entity, found, err := h.repository.GetByID(ctx, request.ProductID)
	if err != nil {
		return GetProductResponse{}, core.NewCommandError(500, err, core.WithReason("failed to load product"))
	}

	if !found {
		return GetProductResponse{Found: false}, nil
	}

	return GetProductResponse{Product: product.ToDTO(entity), Found: true}, nil
}
