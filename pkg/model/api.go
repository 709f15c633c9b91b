package model

// ListOptions carries skip/limit paging for the remote list endpoints.
type ListOptions struct {
	Skip  int
	Limit int
}

// Clamp applies defaults and bounds: limit defaults to 100 (the remote
// service's own default) and is capped at 500, skip is never negative.
func (o *ListOptions) Clamp() {
	if o.Limit <= 0 {
		o.Limit = 100
	}
	if o.Limit > 500 {
		o.Limit = 500
	}
	if o.Skip < 0 {
		o.Skip = 0
	}
}
