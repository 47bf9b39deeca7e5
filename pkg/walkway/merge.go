package walkway

// Merger joins segments which continue each other into longer segments
type Merger struct {
	segments        []*Segment
	mergeCount      int
	unmergableCount int
}

func NewMerger(segments []*Segment) *Merger {
	return &Merger{
		segments: segments,
	}
}

func (m *Merger) Merge() {
	// segments by their first node
	startingAt := make(map[int64][]*Segment)
	for _, seg := range m.segments {
		if len(seg.NodeIDs) < 2 {
			m.unmergableCount++
			continue
		}
		startingAt[seg.NodeIDs[0]] = append(startingAt[seg.NodeIDs[0]], seg)
	}

	merged := make(map[int64]bool)
	segments := make([]*Segment, 0, len(m.segments))

	for _, seg := range m.segments {
		if merged[seg.ID] || len(seg.NodeIDs) < 2 {
			continue
		}
		merged[seg.ID] = true

		current := seg
		for {
			end := current.NodeIDs[len(current.NodeIDs)-1]

			foundNext := false
			for _, next := range startingAt[end] {
				if merged[next.ID] || !canMerge(current, next) {
					continue
				}
				current = mergeTwoSegments(current, next)
				merged[next.ID] = true
				m.mergeCount++
				foundNext = true
				break
			}

			if !foundNext {
				break
			}
		}

		segments = append(segments, current)
	}

	m.segments = segments
}

func canMerge(s1, s2 *Segment) bool {
	return s1.Type == s2.Type
}

func mergeTwoSegments(s1, s2 *Segment) *Segment {
	merged := &Segment{
		ID:   s1.ID,
		Type: s1.Type,
		Tags: s1.Tags,
	}

	merged.NodeIDs = append(merged.NodeIDs, s1.NodeIDs...)
	// the first node of s2 is the last node of s1
	merged.NodeIDs = append(merged.NodeIDs, s2.NodeIDs[1:]...)

	return merged
}

func (m *Merger) Segments() []*Segment {
	return m.segments
}

func (m *Merger) MergeCount() int {
	return m.mergeCount
}

func (m *Merger) UnmergableSegmentCount() int {
	return m.unmergableCount
}
