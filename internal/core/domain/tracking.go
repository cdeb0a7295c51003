package domain

// TrackingParams carries the marketing-origin tags from the storefront
// through checkout to the attribution event. All fields are optional;
// pointers keep "absent" distinguishable from "present but empty".
type TrackingParams struct {
	Src         *string `json:"src"`
	Sck         *string `json:"sck"`
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
}

// IsEmpty reports whether no tracking field is set at all.
func (t *TrackingParams) IsEmpty() bool {
	if t == nil {
		return true
	}
	return t.Src == nil && t.Sck == nil &&
		t.UTMSource == nil && t.UTMMedium == nil && t.UTMCampaign == nil &&
		t.UTMContent == nil && t.UTMTerm == nil
}
