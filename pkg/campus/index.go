package campus

// PointIndex resolves ids to points by value.
// Ids which were not normalized on ingestion ("07" for 7) still resolve through their normalized form.
// The first point with a given id wins, points without id are ignored.
type PointIndex struct {
	byId      map[ID]Point
	canonical map[ID]ID
	order     []ID
}

func NewPointIndex(points []Point) *PointIndex {
	idx := &PointIndex{
		byId:      make(map[ID]Point, len(points)),
		canonical: make(map[ID]ID, len(points)),
		order:     make([]ID, 0, len(points)),
	}
	for _, p := range points {
		if p.ID == "" {
			continue
		}
		if _, exists := idx.byId[p.ID]; exists {
			continue
		}
		idx.byId[p.ID] = p
		idx.order = append(idx.order, p.ID)
		normalized := NormalizeID(string(p.ID))
		if _, exists := idx.canonical[normalized]; !exists {
			idx.canonical[normalized] = p.ID
		}
	}
	return idx
}

// Resolve the id to a point
func (idx *PointIndex) Lookup(id ID) (Point, bool) {
	if p, ok := idx.byId[id]; ok {
		return p, true
	}
	if c, ok := idx.canonical[NormalizeID(string(id))]; ok {
		return idx.byId[c], true
	}
	return Point{}, false
}

// Ids of the indexed points in input order
func (idx *PointIndex) IDs() []ID { return idx.order }

func (idx *PointIndex) Len() int { return len(idx.order) }
