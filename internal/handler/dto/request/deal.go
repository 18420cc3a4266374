package request

import "github.com/google/uuid"

type DealURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func (r DealURI) DealID() uuid.UUID {
	return uuid.MustParse(r.ID)
}

type ProductURI struct {
	ProductID string `uri:"productId" binding:"required,uuid"`
}

func (r ProductURI) ProductUUID() uuid.UUID {
	return uuid.MustParse(r.ProductID)
}
