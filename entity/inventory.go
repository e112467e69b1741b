package entity

const (
	InventoryOpen   = "open"
	InventoryClosed = "closed"
)

type InventoryItem struct {
	ID              string  `json:"id" bson:"id"`
	Name            string  `json:"name" bson:"name"`
	Category        string  `json:"category" bson:"category"`
	Packaging       string  `json:"packaging" bson:"packaging"`
	Supplier        string  `json:"supplier" bson:"supplier"`
	InitialQty      float64 `json:"initialQty" bson:"initialQty"`
	InitialUnitCost float64 `json:"initialUnitCost" bson:"initialUnitCost"`
	UnitCost        float64 `json:"unitCost" bson:"unitCost"`
	CurrentQty      float64 `json:"currentQty" bson:"currentQty"`
}

// MonthlyInventory documents are keyed by MonthId rather than by id; the
// inventory collection reduces to a monthId-indexed map in the view model.
type MonthlyInventory struct {
	MonthID  string          `json:"monthId" bson:"monthId" validate:"required"`
	Status   string          `json:"status" bson:"status"`
	Items    []InventoryItem `json:"items" bson:"items"`
	ClosedAt string          `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
}
