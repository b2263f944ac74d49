package commands

import (
	"context"
	"net/http"

	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type DeleteProductCommand struct {
	ProductID uuid.UUID `json:"id"`
}

func (c DeleteProductCommand) Validate() error {
	var errs core.FieldErrors

	if c.ProductID == uuid.Nil {
		errs.Add("id", "id is required")
	}

	return errs.AsError()
}

type DeleteProductResponse struct {
	Deleted bool `json:"deleted"`
}

// Deleting an absent product is not an error - the response carries false
// and the status stays 200.
func HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, core.ErrBody(err))
		return
	}

	command := DeleteProductCommand{ProductID: productID}

	response, err := mediator.Send[DeleteProductCommand, DeleteProductResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type DeleteProductCommandHandler struct {
	repository product.Repository
}

func NewDeleteProductCommandHandler(repository product.Repository) *DeleteProductCommandHandler {
	return &DeleteProductCommandHandler{repository}
}

func (h *DeleteProductCommandHandler) Handle(
	ctx context.Context,
	request DeleteProductCommand,
) (DeleteProductResponse, error) {
	deleted, err := h.repository.Delete(ctx, request.ProductID)
	if err != nil {
		return DeleteProductResponse{}, core.NewCommandError(500, err, core.WithReason("failed to delete product"))
	}

	return DeleteProductResponse{Deleted: deleted}, nil
}
