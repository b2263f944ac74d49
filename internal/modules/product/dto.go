package product

// DTO is the read-only projection of a product handed to the transport
// layer. It is produced per query and never persisted.
type DTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

func ToDTO(p Product) DTO {
	return DTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Sector:      p.Sector,
		Description: p.Description,
		Price:       p.Price,
	}
}
