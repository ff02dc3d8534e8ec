package models

// History holds the unique keys seen as of the previous run, one list
// per dataset. It is replaced wholesale on every save, never merged.
type History struct {
	PurchaseNotice    []string `json:"purchase_notice"`
	PurchaseIntention []string `json:"purchase_intention"`
	LastUpdated       string   `json:"last_updated,omitempty"`
}

// EmptyHistory returns a History with both key lists present but empty.
func EmptyHistory() History {
	return History{
		PurchaseNotice:    []string{},
		PurchaseIntention: []string{},
	}
}

// NoticeSet returns the notice keys as a lookup set.
func (h *History) NoticeSet() map[string]struct{} {
	return toSet(h.PurchaseNotice)
}

// IntentionSet returns the intention keys as a lookup set.
func (h *History) IntentionSet() map[string]struct{} {
	return toSet(h.PurchaseIntention)
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}

	return set
}
