package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type UpdateProductCommand struct {
	ProductID   uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Sector      string        `json:"sector"`
	Description string        `json:"description"`
	Price       product.Price `json:"price"`
}

func (c UpdateProductCommand) Validate() error {
	var errs core.FieldErrors

	if c.ProductID == uuid.Nil {
		errs.Add("id", "id is required")
	}

	errs = append(errs, validateProductFields(c.Name, c.Sector, c.Description, c.Price)...)
	return errs.AsError()
}

type UpdateProductResponse struct {
	Updated bool `json:"updated"`
}

func HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[UpdateProductCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, core.ErrBody(err))
		return
	}

	pathID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, core.ErrBody(err))
		return
	}

	// The identity in the path and the one in the body must agree before
	// the command is dispatched at all.
	if pathID != command.ProductID {
		core.WriteBadRequest(w, r, core.ErrBody(fmt.Errorf("path id does not match body id")))
		return
	}

	response, err := mediator.Send[UpdateProductCommand, UpdateProductResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	if !response.Updated {
		core.WriteNotFound(w, r, response)
		return
	}

	core.WriteOK(w, r, response)
}

type UpdateProductCommandHandler struct {
	repository product.Repository
}

func NewUpdateProductCommandHandler(repository product.Repository) *UpdateProductCommandHandler {
	return &UpdateProductCommandHandler{repository}
}

func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context,
	request UpdateProductCommand,
) (UpdateProductResponse, error) {
	entity, found, err := h.repository.GetByID(ctx, request.ProductID)
	if err != nil {
		return UpdateProductResponse{}, core.NewCommandError(500, err, core.WithReason("failed to load product"))
	}

	if !found {
		return UpdateProductResponse{Updated: false}, nil
	}

	entity.Replace(request.Name, request.Sector, request.Description, request.Price)

	if err := h.repository.Update(ctx, entity); err != nil {
		// The product disappeared between the read and the write.
		if errors.Is(err, product.ErrNotFound) {
			return UpdateProductResponse{Updated: false}, nil
		}

		return UpdateProductResponse{}, core.NewCommandError(500, err, core.WithReason("failed to update product"))
	}

	return UpdateProductResponse{Updated: true}, nil
}
