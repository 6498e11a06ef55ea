package models

// Selection is the structured value yielded by the address-selection popup.
type Selection struct {
	Address      string `json:"address"`
	JibunAddress string `json:"jibunAddress"`
	RoadAddress  string `json:"roadAddress"`
	Zonecode     string `json:"zonecode"`
	Sido         string `json:"sido"`
	Sigungu      string `json:"sigungu"`
	Bcode        string `json:"bcode"`
}

// SelectionOutcome is either a completed Selection or a cancellation.
type SelectionOutcome struct {
	Cancelled bool       `json:"cancelled"`
	Selection *Selection `json:"selection,omitempty"`
}

// Selected wraps a completed popup selection.
func Selected(s Selection) SelectionOutcome {
	return SelectionOutcome{Selection: &s}
}

// Cancelled is the outcome of a popup closed without a choice.
func Cancelled() SelectionOutcome {
	return SelectionOutcome{Cancelled: true}
}

// Get returns the selection and true, or false when cancelled or empty.
func (o SelectionOutcome) Get() (Selection, bool) {
	if o.Cancelled || o.Selection == nil {
		return Selection{}, false
	}
	return *o.Selection, true
}
