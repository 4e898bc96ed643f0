package entities

// AggregationKind selects the scalar computed over a filtered set.
type AggregationKind string

const (
	AggregateCount   AggregationKind = "COUNT"
	AggregateAverage AggregationKind = "AVERAGE"
)

// Aggregation describes a scalar aggregation over the filtered set.
// Field is required for AVERAGE and must be numeric. SplitBy, valid only for
// AVERAGE, names a boolean field that partitions the set into two mutually
// exclusive branches, each averaged independently.
type Aggregation struct {
	Kind    AggregationKind `json:"kind"`
	Field   Field           `json:"field,omitempty"`
	SplitBy *Field          `json:"split_by,omitempty"`
}

// Grouping buckets the filtered set by a key field. Groups with fewer than
// MinGroupSize members are dropped entirely. Aggregation, when set, is
// computed per group; the default is a member count.
type Grouping struct {
	Key          Field        `json:"key"`
	MinGroupSize int          `json:"min_group_size,omitempty"`
	Aggregation  *Aggregation `json:"aggregation,omitempty"`
}

// SortKey orders results by a field. Keys are applied in priority order;
// ties on every key fall back to snapshot order.
type SortKey struct {
	Field      Field `json:"field"`
	Descending bool  `json:"descending,omitempty"`
}

// Query is the full structured request evaluated by the query engine:
// filter criteria plus an optional aggregation, grouping, sort, and top-K
// limit. Exactly one of Aggregation and Grouping may be set; when neither
// is, the result is the (optionally ranked and truncated) provider list.
type Query struct {
	Criteria    Criteria     `json:"criteria"`
	Aggregation *Aggregation `json:"aggregation,omitempty"`
	Grouping    *Grouping    `json:"grouping,omitempty"`
	Sort        []SortKey    `json:"sort,omitempty"`
	Limit       int          `json:"limit,omitempty"`
}
