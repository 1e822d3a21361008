package services

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// fakeDB implements DB with per-test closures. Methods without a closure
// panic so a test never silently swallows an unexpected query.
type fakeDB struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (CommandTag, error)
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if f.QueryFunc == nil {
		panic("fakeDB: unexpected Query: " + sql)
	}
	return f.QueryFunc(ctx, sql, args...)
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	if f.QueryRowFunc == nil {
		panic("fakeDB: unexpected QueryRow: " + sql)
	}
	return f.QueryRowFunc(ctx, sql, args...)
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	if f.ExecFunc == nil {
		panic("fakeDB: unexpected Exec: " + sql)
	}
	return f.ExecFunc(ctx, sql, args...)
}

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.idx-1], dest)
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error { return r.err }

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

func rowFromValues(values ...any) Row {
	return &fakeRow{values: values}
}

type fakeCommandTag struct {
	rowsAffected int64
}

func (t fakeCommandTag) RowsAffected() int64 { return t.rowsAffected }

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, value := range values {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Ptr || dv.IsNil() {
			return fmt.Errorf("fake scan: destination %d is not a pointer", i)
		}
		ev := dv.Elem()
		if value == nil {
			ev.Set(reflect.Zero(ev.Type()))
			continue
		}
		vv := reflect.ValueOf(value)
		switch {
		case vv.Type().AssignableTo(ev.Type()):
			ev.Set(vv)
		case vv.Type().ConvertibleTo(ev.Type()):
			ev.Set(vv.Convert(ev.Type()))
		default:
			return fmt.Errorf("fake scan: cannot assign %T to %s", value, ev.Type())
		}
	}
	return nil
}

// fakeCache implements Cache with per-test closures. Nil closures behave
// like an empty cache.
type fakeCache struct {
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	GetFunc    func(ctx context.Context, key string) (string, error)
	ExpireFunc func(ctx context.Context, key string, ttl time.Duration) error
	DelFunc    func(ctx context.Context, keys ...string) error
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.SetFunc == nil {
		return nil
	}
	return f.SetFunc(ctx, key, value, ttl)
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.GetFunc == nil {
		return "", ErrCacheMiss
	}
	return f.GetFunc(ctx, key)
}

func (f *fakeCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if f.ExpireFunc == nil {
		return nil
	}
	return f.ExpireFunc(ctx, key, ttl)
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	if f.DelFunc == nil {
		return nil
	}
	return f.DelFunc(ctx, keys...)
}
