package entities

// Article is a catalog item staff price quotes against.
//
// Storage model (DynamoDB):
//   - PK: id

type Article struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	Designation string  `json:"designation"`
	Unit        string  `json:"unite"`
	PriceHT     float64 `json:"prix_ht"`
}
