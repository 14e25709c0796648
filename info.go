package alloctrack

// AllocationInfo summarises the allocation activity observed within a
// single measurement scope.  The current fields are signed: they go
// negative when a scope frees memory whose allocation it did not
// observe.  The JSON tags carry the stable field names consumed by
// tooling.
type AllocationInfo struct {
	CountTotal   uint64 `json:"count_total"`
	CountCurrent int64  `json:"count_current"`
	CountMax     uint64 `json:"count_max"`
	BytesTotal   uint64 `json:"bytes_total"`
	BytesCurrent int64  `json:"bytes_current"`
	BytesMax     uint64 `json:"bytes_max"`
}

// add folds a completed child scope into its parent.  Peaks fold
// additively: a child's peak contributes its full value to the
// parent's, it is not maxed against the parent's own running peak.
func (info *AllocationInfo) add(child AllocationInfo) {
	info.CountTotal += child.CountTotal
	info.CountCurrent += child.CountCurrent
	info.CountMax += child.CountMax
	info.BytesTotal += child.BytesTotal
	info.BytesCurrent += child.BytesCurrent
	info.BytesMax += child.BytesMax
}
