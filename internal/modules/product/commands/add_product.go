package commands

import (
	"context"
	"net/http"
	"path"

	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type AddProductCommand struct {
	Name        string        `json:"name"`
	Sector      string        `json:"sector"`
	Description string        `json:"description"`
	Price       product.Price `json:"price"`
}

func (c AddProductCommand) Validate() error {
	return validateProductFields(c.Name, c.Sector, c.Description, c.Price).AsError()
}

type AddProductResponse struct {
	ProductID uuid.UUID `json:"id"`
}

func HandleAddProduct(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[AddProductCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, core.ErrBody(err))
		return
	}

	response, err := mediator.Send[AddProductCommand, AddProductResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := path.Join(r.Host, "products", response.ProductID.String())
	core.WriteCreated(w, r, location, response)
}

type AddProductCommandHandler struct {
	repository product.Repository
}

func NewAddProductCommandHandler(repository product.Repository) *AddProductCommandHandler {
	return &AddProductCommandHandler{repository}
}

func (h *AddProductCommandHandler) Handle(
	ctx context.Context,
	request AddProductCommand,
) (AddProductResponse, error) {
	entity := product.New(request.Name, request.Sector, request.Description, request.Price)

	id, err := h.repository.Add(ctx, entity)
	if err != nil {
		return AddProductResponse{}, core.NewCommandError(500, err, core.WithReason("failed to store product"))
	}

	return AddProductResponse{ProductID: id}, nil
}
