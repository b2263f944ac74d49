package queries

import (
	"context"
	"net/http"

	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
)

type ListProductsQuery struct{}

func HandleListProducts(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListProductsQuery, []product.DTO](r.Context(), ListProductsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListProductsQueryHandler struct {
	repository product.Repository
}

func NewListProductsQueryHandler(repository product.Repository) *ListProductsQueryHandler {
	return &ListProductsQueryHandler{repository}
}

// Handle returns every product as a DTO. The result is an empty slice,
// never nil, when the store holds nothing.
func (h *ListProductsQueryHandler) Handle(
	ctx context.Context,
	_ ListProductsQuery,
) ([]product.DTO, error) {
	entities, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, core.NewCommandError(500, err, core.WithReason("failed to list products"))
	}

	return core.Map(entities, product.ToDTO), nil
}
