package domain

// ODFlow is travel demand between an origin and a destination node.
type ODFlow struct {
	Origin      int `json:"origin"`
	Destination int `json:"destination"`
	Flow        int `json:"flow"`
}

// NewODFlow validates the pair before constructing the flow.
func NewODFlow(origin, destination, flow int) (ODFlow, error) {
	if flow < 0 {
		return ODFlow{}, ErrNegativeFlow
	}
	if origin == destination {
		return ODFlow{}, ErrSameOriginAndDest
	}
	return ODFlow{Origin: origin, Destination: destination, Flow: flow}, nil
}
