package dbmetrics

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// stubDriver минимальный драйвер database/sql, считающий фиксации и откаты
type stubDriver struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	execs     []string
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{driver: d}, nil
}

func (d *stubDriver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commits, d.rollbacks, d.execs = 0, 0, nil
}

type stubConn struct {
	driver *stubDriver
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("stub: prepare is not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{driver: c.driver}, nil
}

func (c *stubConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.driver.mu.Lock()
	defer c.driver.mu.Unlock()
	c.driver.execs = append(c.driver.execs, query)
	return driver.RowsAffected(1), nil
}

type stubTx struct {
	driver *stubDriver
}

func (t *stubTx) Commit() error {
	t.driver.mu.Lock()
	defer t.driver.mu.Unlock()
	t.driver.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.driver.mu.Lock()
	defer t.driver.mu.Unlock()
	t.driver.rollbacks++
	return nil
}

var testDriver = &stubDriver{}

func init() {
	sql.Register("dbmetrics_stub", testDriver)
}
