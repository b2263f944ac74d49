package commands

import (
	"context"
	"testing"

	"github.com/mdjukic/inventory-api/internal/modules/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_DeleteProduct_Returns_True_Then_False_For_Same_Identity(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repository := product.NewMemoryRepository()
	handler := NewDeleteProductCommandHandler(repository)

	entity := product.New("Milk", "Dairy", "", product.Price(450))
	_, err := repository.Add(ctx, entity)
	require.NoError(t, err)

	command := DeleteProductCommand{ProductID: entity.ID}

	// Act
	first, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	second, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// Assert
	require.True(t, first.Deleted)
	require.False(t, second.Deleted)

	_, found, err := repository.GetByID(ctx, entity.ID)
	require.NoError(t, err)
	require.False(t, found)
}

func Test_DeleteProductCommand_Validate_Requires_Identity(t *testing.T) {
	require.Error(t, DeleteProductCommand{}.Validate())
	require.NoError(t, DeleteProductCommand{ProductID: uuid.New()}.Validate())
}
