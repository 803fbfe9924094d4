package regiondb

type ColumnFamily struct {
	Name              string `json:"name"`
	Compression       string `json:"compression"`
	DataBlockEncoding string `json:"data_block_encoding"`
	MaxVersions       int    `json:"max_versions"`
}

type TableDescriptor struct {
	Name        string         `json:"name"`
	Families    []ColumnFamily `json:"families"`
	MaxFileSize int64          `json:"max_file_size,omitempty"`
}

// Region covers [StartKey, EndKey). An empty StartKey marks the first
// region of a table, an empty EndKey the last one.
type Region struct {
	RegionID string `json:"region_id"`
	Table    string `json:"table"`
	StartKey []byte `json:"start_key"`
	EndKey   []byte `json:"end_key"`
}

func (d *TableDescriptor) clone() *TableDescriptor {
	ret := *d
	ret.Families = append([]ColumnFamily(nil), d.Families...)
	return &ret
}

func (r *Region) clone() *Region {
	return &Region{
		RegionID: r.RegionID,
		Table:    r.Table,
		StartKey: append([]byte(nil), r.StartKey...),
		EndKey:   append([]byte(nil), r.EndKey...),
	}
}

func cloneRegions(regions []*Region) []*Region {
	ret := make([]*Region, 0, len(regions))
	for _, r := range regions {
		ret = append(ret, r.clone())
	}
	return ret
}
