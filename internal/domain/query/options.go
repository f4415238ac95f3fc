package query

// DistanceMode selects how the day distance to a record is measured.
type DistanceMode string

// Distance modes.
const (
	// DistanceLinear counts elapsed days between the reference date and the
	// record's real date. A query near the end of December is far away from a
	// race in early January of any year.
	DistanceLinear DistanceMode = "linear"
	// DistanceCircular measures day-of-year distance around the calendar, so
	// 30 Dec and 1 Jan are two days apart.
	DistanceCircular DistanceMode = "circular"
)

// DefaultPlaceholderYear is the reference year for day/month queries.
const DefaultPlaceholderYear = 1955

type options struct {
	placeholderYear int
	mode            DistanceMode
}

// Option applies a configuration option to a nearest-race query.
type Option func(*options)

// WithPlaceholderYear sets the year used to build the reference date.
func WithPlaceholderYear(year int) Option {
	return func(o *options) {
		if year > 0 {
			o.placeholderYear = year
		}
	}
}

// WithDistanceMode sets the distance measure. Unknown modes are ignored.
func WithDistanceMode(mode DistanceMode) Option {
	return func(o *options) {
		switch mode {
		case DistanceLinear, DistanceCircular:
			o.mode = mode
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		placeholderYear: DefaultPlaceholderYear,
		mode:            DistanceLinear,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
