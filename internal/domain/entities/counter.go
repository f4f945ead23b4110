package entities

// Counter is the last-used sequence value for one allocation key, e.g.
// "demande:2025". It is created lazily by the first upsert-increment and is
// only ever mutated through that atomic primitive; application code never
// reads-then-writes it.
//
// Storage model (DynamoDB):
//   - PK: key
//   - seq mutated exclusively via UpdateItem ADD

type Counter struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}
