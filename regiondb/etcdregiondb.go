package regiondb

import (
	"context"
	"encoding/json"
	"path"
	"strings"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/clientv3util"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/pkg/rlog"
)

// EtcdRegionDB stores each table as two keys: the descriptor and the
// ordered list of its regions. Both are written in one transaction.
type EtcdRegionDB struct {
	cli *clientv3.Client
}

var _ RegionDB = &EtcdRegionDB{}

func NewEtcdRegionDB(endpoints []string, dialTimeout time.Duration) (*EtcdRegionDB, error) {
	if len(endpoints) == 0 {
		return nil, rerror.New(rerror.RG_CONFIG_ERROR, "no etcd endpoints configured")
	}
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: dialTimeout,
		DialOptions: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	})
	if err != nil {
		return nil, rerror.Newf(rerror.RG_STORE_ERROR, "failed to connect to etcd %v: %w", endpoints, err)
	}

	rlog.Zero.Debug().
		Strs("endpoints", endpoints).
		Msg("etcdregiondb: NewEtcdRegionDB")

	return &EtcdRegionDB{
		cli: cli,
	}, nil
}

const (
	tablesNamespace  = "/tables/"
	regionsNamespace = "/regions/"
)

func tableNodePath(table string) string {
	return path.Join(tablesNamespace, table)
}

func regionsNodePath(table string) string {
	return path.Join(regionsNamespace, table)
}

func (q *EtcdRegionDB) Client() *clientv3.Client {
	return q.cli
}

// ==============================================================================
//                                   TABLES
// ==============================================================================

func (q *EtcdRegionDB) ListTables(ctx context.Context) ([]string, error) {
	rlog.Zero.Debug().Msg("etcdregiondb: list tables")

	resp, err := q.cli.Get(ctx, tablesNamespace, clientv3.WithPrefix(), clientv3.WithKeysOnly(), clientv3.WithSort(clientv3.SortByKey, clientv3.SortAscend))
	if err != nil {
		return nil, storeError(err)
	}

	ret := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		ret = append(ret, strings.TrimPrefix(string(kv.Key), tablesNamespace))
	}
	return ret, nil
}

func (q *EtcdRegionDB) GetTableDescriptor(ctx context.Context, table string) (*TableDescriptor, error) {
	rlog.Zero.Debug().Str("table", table).Msg("etcdregiondb: get table descriptor")

	var desc TableDescriptor
	if err := q.fetch(ctx, table, tableNodePath(table), &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (q *EtcdRegionDB) CreateTable(ctx context.Context, desc *TableDescriptor, splits [][]byte) error {
	if err := validateDescriptor(desc); err != nil {
		return err
	}
	sorted, err := normalizeSplits(splits)
	if err != nil {
		return err
	}
	rlog.Zero.Debug().
		Str("table", desc.Name).
		Int("splits", len(sorted)).
		Msg("etcdregiondb: create table")

	rawDesc, err := json.Marshal(desc)
	if err != nil {
		return err
	}
	rawRegions, err := json.Marshal(buildRegions(desc.Name, sorted))
	if err != nil {
		return err
	}

	resp, err := q.cli.Txn(ctx).
		If(clientv3util.KeyMissing(tableNodePath(desc.Name))).
		Then(
			clientv3.OpPut(tableNodePath(desc.Name), string(rawDesc)),
			clientv3.OpPut(regionsNodePath(desc.Name), string(rawRegions)),
		).
		Commit()
	if err != nil {
		return storeError(err)
	}
	if !resp.Succeeded {
		return tableExists(desc.Name)
	}

	rlog.Zero.Debug().
		Int64("revision", resp.Header.GetRevision()).
		Msg("etcdregiondb: put table to etcd")
	return nil
}

func (q *EtcdRegionDB) DropTable(ctx context.Context, table string) error {
	rlog.Zero.Debug().Str("table", table).Msg("etcdregiondb: drop table")

	resp, err := q.cli.Txn(ctx).
		If(clientv3util.KeyExists(tableNodePath(table))).
		Then(
			clientv3.OpDelete(tableNodePath(table)),
			clientv3.OpDelete(regionsNodePath(table)),
		).
		Commit()
	if err != nil {
		return storeError(err)
	}
	if !resp.Succeeded {
		return tableNotFound(table)
	}
	return nil
}

// ==============================================================================
//                                  REGIONS
// ==============================================================================

func (q *EtcdRegionDB) ListRegions(ctx context.Context, table string) ([]*Region, error) {
	rlog.Zero.Debug().Str("table", table).Msg("etcdregiondb: list regions")

	var regions []*Region
	if err := q.fetch(ctx, table, regionsNodePath(table), &regions); err != nil {
		return nil, err
	}
	sortRegions(regions)
	return regions, nil
}

func (q *EtcdRegionDB) Close() error {
	return q.cli.Close()
}

func (q *EtcdRegionDB) fetch(ctx context.Context, table, nodePath string, target any) error {
	raw, err := q.cli.Get(ctx, nodePath)
	if err != nil {
		return storeError(err)
	}

	switch len(raw.Kvs) {
	case 0:
		return tableNotFound(table)
	case 1:
		if err := json.Unmarshal(raw.Kvs[0].Value, target); err != nil {
			return rerror.Newf(rerror.RG_STORE_ERROR, "failed to decode %s: %w", nodePath, err)
		}
		return nil
	default:
		return rerror.Newf(rerror.RG_STORE_ERROR, "possible data corruption: multiple key-value pairs found for %v", nodePath)
	}
}

func storeError(err error) error {
	return rerror.Newf(rerror.RG_STORE_ERROR, "etcd request failed: %w", err)
}
