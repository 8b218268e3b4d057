package model

// Page is the generic offset/limit pagination contract owned by the query
// layer. Services never see provider-specific paging objects.
type Page struct {
	Limit  int32
	Offset int32
}

const defaultPageLimit = 50

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
