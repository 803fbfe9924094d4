package tables

import (
	"math"

	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/regiondb"
)

type Compression string

const (
	CompressionNone   = Compression("NONE")
	CompressionSnappy = Compression("SNAPPY")
	CompressionGz     = Compression("GZ")
	CompressionLz4    = Compression("LZ4")
)

type DataBlockEncoding string

const (
	EncodingNone     = DataBlockEncoding("NONE")
	EncodingPrefix   = DataBlockEncoding("PREFIX")
	EncodingDiff     = DataBlockEncoding("DIFF")
	EncodingFastDiff = DataBlockEncoding("FAST_DIFF")
)

// BytesPerMegabyte converts region sizes given in MB: 1 MB = 2^20 bytes.
const BytesPerMegabyte int64 = 1 << 20

type ColumnFamily struct {
	Name              string
	Compression       Compression
	DataBlockEncoding DataBlockEncoding
	MaxVersions       int
}

// NewPreSplitFamily returns the family used for freshly provisioned tables:
// snappy compressed, FAST_DIFF encoded, latest version only.
func NewPreSplitFamily(name string) *ColumnFamily {
	return &ColumnFamily{
		Name:              name,
		Compression:       CompressionSnappy,
		DataBlockEncoding: EncodingFastDiff,
		MaxVersions:       1,
	}
}

type TableDescriptor struct {
	Name     string
	Families []*ColumnFamily
	// MaxFileSize is in bytes; zero keeps the store default.
	MaxFileSize int64
}

func NewTableDescriptor(name string, families ...*ColumnFamily) *TableDescriptor {
	return &TableDescriptor{
		Name:     name,
		Families: families,
	}
}

// MaxFileSizeMB is the largest size in MB whose byte count fits in an int64.
const MaxFileSizeMB = math.MaxInt64 / BytesPerMegabyte

// SetMaxFileSizeMB sets the max region file size. Non-positive values keep the default.
func (t *TableDescriptor) SetMaxFileSizeMB(mb int) error {
	if mb <= 0 {
		return nil
	}
	if int64(mb) > MaxFileSizeMB {
		return rerror.Newf(rerror.RG_CONFIG_ERROR, "region size of table %s is too large: %d MB", t.Name, mb)
	}
	t.MaxFileSize = int64(mb) * BytesPerMegabyte
	return nil
}

// CloneAs copies the schema under a new table name.
func (t *TableDescriptor) CloneAs(name string) *TableDescriptor {
	families := make([]*ColumnFamily, 0, len(t.Families))
	for _, cf := range t.Families {
		c := *cf
		families = append(families, &c)
	}
	return &TableDescriptor{
		Name:        name,
		Families:    families,
		MaxFileSize: t.MaxFileSize,
	}
}

func (t *TableDescriptor) FamilyNames() []string {
	ret := make([]string, 0, len(t.Families))
	for _, cf := range t.Families {
		ret = append(ret, cf.Name)
	}
	return ret
}

func TableDescriptorFromDB(d *regiondb.TableDescriptor) *TableDescriptor {
	families := make([]*ColumnFamily, 0, len(d.Families))
	for _, cf := range d.Families {
		families = append(families, &ColumnFamily{
			Name:              cf.Name,
			Compression:       Compression(cf.Compression),
			DataBlockEncoding: DataBlockEncoding(cf.DataBlockEncoding),
			MaxVersions:       cf.MaxVersions,
		})
	}
	return &TableDescriptor{
		Name:        d.Name,
		Families:    families,
		MaxFileSize: d.MaxFileSize,
	}
}

func (t *TableDescriptor) ToDB() *regiondb.TableDescriptor {
	families := make([]regiondb.ColumnFamily, 0, len(t.Families))
	for _, cf := range t.Families {
		families = append(families, regiondb.ColumnFamily{
			Name:              cf.Name,
			Compression:       string(cf.Compression),
			DataBlockEncoding: string(cf.DataBlockEncoding),
			MaxVersions:       cf.MaxVersions,
		})
	}
	return &regiondb.TableDescriptor{
		Name:        t.Name,
		Families:    families,
		MaxFileSize: t.MaxFileSize,
	}
}
