package dataset

// Kind tags a record's country label as a single country or a supranational aggregate.
type Kind int

const (
	// KindCountry is an individual reporting country.
	KindCountry Kind = iota
	// KindAggregate is a bloc such as EU-27 or the Euro area.
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindCountry:
		return "country"
	case KindAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// Default aggregate labels as they appear in the Eurostat sdg_07_40 extract.
const (
	LabelEU27     = "European Union - 27 countries"
	LabelEuroArea = "Euro area – 20 countries"
)

// DefaultAggregateLabels returns the aggregate labels used when none are configured.
func DefaultAggregateLabels() []string {
	return []string{LabelEU27, LabelEuroArea}
}

// Classifier decides the Kind of a country label by exact string match against
// a fixed aggregate set.
type Classifier struct {
	aggregates map[string]struct{}
	labels     []string
}

// NewClassifier builds a classifier from the given aggregate labels.
func NewClassifier(labels []string) *Classifier {
	c := &Classifier{
		aggregates: make(map[string]struct{}, len(labels)),
		labels:     make([]string, 0, len(labels)),
	}
	for _, l := range labels {
		if _, dup := c.aggregates[l]; dup {
			continue
		}
		c.aggregates[l] = struct{}{}
		c.labels = append(c.labels, l)
	}
	return c
}

// Kind returns the kind of the label.
func (c *Classifier) Kind(country string) Kind {
	if _, ok := c.aggregates[country]; ok {
		return KindAggregate
	}
	return KindCountry
}

// IsAggregate reports whether the label is one of the aggregates.
func (c *Classifier) IsAggregate(country string) bool {
	return c.Kind(country) == KindAggregate
}

// Labels returns the aggregate labels in configuration order.
func (c *Classifier) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}
