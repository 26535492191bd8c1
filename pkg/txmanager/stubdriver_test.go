package txmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// stubDriver драйвер database/sql без сервера, считает фиксации и откаты
type stubDriver struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (d *stubDriver) Open(string) (driver.Conn, error) { return &stubConn{driver: d}, nil }

func (d *stubDriver) counts() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.commits, d.rollbacks
}

type stubConn struct{ driver *stubDriver }

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("stub: prepare is not supported")
}
func (c *stubConn) Close() error              { return nil }
func (c *stubConn) Begin() (driver.Tx, error) { return &stubTx{driver: c.driver}, nil }

func (c *stubConn) BeginTx(_ context.Context, _ driver.TxOptions) (driver.Tx, error) {
	return &stubTx{driver: c.driver}, nil
}

func (c *stubConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	return driver.RowsAffected(1), nil
}

type stubTx struct{ driver *stubDriver }

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

// openStubDB открывает *sql.DB на собственном экземпляре драйвера
func openStubDB(name string) (*sql.DB, *stubDriver, error) {
	drv := &stubDriver{}
	sql.Register(name, drv)
	db, err := sql.Open(name, "")
	return db, drv, err
}
