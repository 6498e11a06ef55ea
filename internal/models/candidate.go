package models

// AddressType tags a geocoding candidate as road-name or lot/region based.
type AddressType string

const (
	AddressTypeRoad       AddressType = "ROAD_ADDR"
	AddressTypeRegion     AddressType = "REGION_ADDR"
	AddressTypeRoadName   AddressType = "ROAD"
	AddressTypeRegionName AddressType = "REGION"
)

// SearchStatus mirrors the status reported by the geocoding gateway.
type SearchStatus string

const (
	StatusOK         SearchStatus = "OK"
	StatusZeroResult SearchStatus = "ZERO_RESULT"
	StatusError      SearchStatus = "ERROR"
)

// LotAddress is the land-parcel part of a candidate.
type LotAddress struct {
	AddressName string `json:"address_name"`
	Region1     string `json:"region_1depth_name"`
	Region2     string `json:"region_2depth_name"`
	Region3     string `json:"region_3depth_name"`
	BCode       string `json:"b_code"`
	HCode       string `json:"h_code"`
	ZoneNo      string `json:"zone_no,omitempty"`
}

// RoadAddress is the road-name part of a candidate.
type RoadAddress struct {
	AddressName  string `json:"address_name"`
	Region1      string `json:"region_1depth_name"`
	Region2      string `json:"region_2depth_name"`
	Region3      string `json:"region_3depth_name"`
	RoadName     string `json:"road_name"`
	BuildingName string `json:"building_name"`
	ZoneNo       string `json:"zone_no"`
}

// GeocodeCandidate is one document returned by the geocoding gateway.
type GeocodeCandidate struct {
	AddressName string       `json:"address_name"`
	AddressType AddressType  `json:"address_type"`
	X           string       `json:"x"`
	Y           string       `json:"y"`
	Address     *LotAddress  `json:"address"`
	RoadAddress *RoadAddress `json:"road_address"`
}

// IsRoad reports whether the candidate is a full road-name address match.
func (c GeocodeCandidate) IsRoad() bool {
	return c.AddressType == AddressTypeRoad
}

// IsLot reports whether the candidate is a lot or region match.
func (c GeocodeCandidate) IsLot() bool {
	return c.AddressType == AddressTypeRegion || c.AddressType == AddressTypeRegionName
}

// LotName returns the lot address name or "".
func (c GeocodeCandidate) LotName() string {
	if c.Address == nil {
		return ""
	}
	return c.Address.AddressName
}

// RoadName returns the embedded road address name or "".
func (c GeocodeCandidate) RoadName() string {
	if c.RoadAddress == nil {
		return ""
	}
	return c.RoadAddress.AddressName
}

// SearchResult is the answer of one gateway query.
type SearchResult struct {
	Status     SearchStatus       `json:"status"`
	Candidates []GeocodeCandidate `json:"candidates"`
}

// OK reports whether the search succeeded with at least one candidate.
func (r SearchResult) OK() bool {
	return r.Status == StatusOK && len(r.Candidates) > 0
}

// PreferRoad picks the first road-type candidate, falling back to the first candidate.
func (r SearchResult) PreferRoad() (GeocodeCandidate, bool) {
	if len(r.Candidates) == 0 {
		return GeocodeCandidate{}, false
	}
	for _, c := range r.Candidates {
		if c.IsRoad() {
			return c, true
		}
	}
	return r.Candidates[0], true
}
