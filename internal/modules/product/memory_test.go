package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_MemoryRepository_Add_Then_GetByID_Returns_Stored_Product(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repository := NewMemoryRepository()
	entity := New("Milk", "Dairy", "", Price(450))

	// Act
	id, err := repository.Add(ctx, entity)

	// Assert
	require.NoError(t, err)
	require.Equal(t, entity.ID, id)

	stored, found, err := repository.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, entity, stored)
}

func Test_MemoryRepository_Add_Rejects_Duplicate_Identity(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repository := NewMemoryRepository()
	entity := New("Milk", "Dairy", "", Price(450))

	_, err := repository.Add(ctx, entity)
	require.NoError(t, err)

	// Act
	_, err = repository.Add(ctx, entity)

	// Assert
	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func Test_MemoryRepository_GetByID_Reports_Absence_Without_Error(t *testing.T) {
	// Arrange
	repository := NewMemoryRepository()

	// Act
	_, found, err := repository.GetByID(context.Background(), uuid.New())

	// Assert
	require.NoError(t, err)
	require.False(t, found)
}

func Test_MemoryRepository_GetAll_Returns_Products_Ordered_By_Name(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repository := NewMemoryRepository()

	for _, name := range []string{"Yogurt", "Bread", "Milk"} {
		_, err := repository.Add(ctx, New(name, "Groceries", "", Price(100)))
		require.NoError(t, err)
	}

	// Act
	products, err := repository.GetAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, "Bread", products[0].Name)
	require.Equal(t, "Milk", products[1].Name)
	require.Equal(t, "Yogurt", products[2].Name)
}

func Test_MemoryRepository_GetAll_Returns_Empty_Slice_When_Store_Is_Empty(t *testing.T) {
	// Act
	products, err := NewMemoryRepository().GetAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, products)
	require.Empty(t, products)
}

func Test_MemoryRepository_Update_Returns_NotFound_For_Missing_Identity(t *testing.T) {
	// Arrange
	repository := NewMemoryRepository()
	entity := New("Milk", "Dairy", "", Price(450))

	// Act
	err := repository.Update(context.Background(), entity)

	// Assert
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_MemoryRepository_Update_Replaces_The_Stored_Entity(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repository := NewMemoryRepository()
	entity := New("Milk", "Dairy", "", Price(450))

	_, err := repository.Add(ctx, entity)
	require.NoError(t, err)

	entity.Replace("Milk 2L", "Dairy", "", Price(500))

	// Act
	err = repository.Update(ctx, entity)

	// Assert
	require.NoError(t, err)

	stored, found, err := repository.GetByID(ctx, entity.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Milk 2L", stored.Name)
	require.Equal(t, Price(500), stored.Price)
}

func Test_MemoryRepository_Delete_Is_Idempotent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repository := NewMemoryRepository()
	entity := New("Milk", "Dairy", "", Price(450))

	_, err := repository.Add(ctx, entity)
	require.NoError(t, err)

	// Act
	first, err := repository.Delete(ctx, entity.ID)
	require.NoError(t, err)

	second, err := repository.Delete(ctx, entity.ID)
	require.NoError(t, err)

	// Assert
	require.True(t, first)
	require.False(t, second)
}
