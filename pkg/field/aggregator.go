package field

// Aggregator collects per-field validity by group. Calls are fire and
// forget and must tolerate repeats.
type Aggregator interface {
	Update(group, fieldID string, valid bool)
	Remove(group, fieldID string)
}

func pushUpdate(agg Aggregator, group, id string, valid bool) {
	if agg == nil || group == "" {
		return
	}
	agg.Update(group, id, valid)
}

func pushRemove(agg Aggregator, group, id string) {
	if agg == nil || group == "" {
		return
	}
	agg.Remove(group, id)
}
