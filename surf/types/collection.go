package types

// Collection is one loaded object: its header, comment and point grid.
type Collection struct {
	Info     ObjectInfo
	Metadata Metadata
	Comment  string
	Points   []int32
}

// NewCollection decodes the header and comment of one object. The point
// slice is taken as is.
func NewCollection(info ObjectInfo, comment []byte, pts []int32) (*Collection, error) {
	md, err := info.Metadata()
	if err != nil {
		return nil, err
	}
	text, err := DecodeComment(comment)
	if err != nil {
		return nil, err
	}
	if pts == nil {
		pts = []int32{}
	}
	return &Collection{Info: info, Metadata: md, Comment: text, Points: pts}, nil
}

// Clone returns a copy that shares no memory with c.
func (c *Collection) Clone() *Collection {
	if c == nil {
		return nil
	}
	out := *c
	out.Points = make([]int32, len(c.Points))
	copy(out.Points, c.Points)
	return &out
}

// CloneAll copies a slice of collections, preserving nil entries.
func CloneAll(cs []*Collection) []*Collection {
	if cs == nil {
		return nil
	}
	out := make([]*Collection, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}
