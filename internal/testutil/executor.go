package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNotExecuted возвращается RecordingExecutor вместо обращения к БД
var ErrNotExecuted = errors.New("testutil: query recorded, not executed")

// Query записанный запрос с аргументами
type Query struct {
	SQL  string
	Args []interface{}
}

// RecordingExecutor запоминает SQL запросы репозиториев и ничего не выполняет
// QueryRowContext не поддерживается: *sql.Row нельзя создать без соединения
type RecordingExecutor struct {
	mu      sync.Mutex
	queries []Query
}

func (e *RecordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.record(query, args)
	return nil, ErrNotExecuted
}

func (e *RecordingExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.record(query, args)
	return nil, ErrNotExecuted
}

func (e *RecordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("testutil: QueryRowContext is not supported by RecordingExecutor")
}

// Last возвращает последний записанный запрос
func (e *RecordingExecutor) Last() Query {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queries) == 0 {
		return Query{}
	}
	return e.queries[len(e.queries)-1]
}

func (e *RecordingExecutor) record(query string, args []interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queries = append(e.queries, Query{SQL: query, Args: args})
}

// FakeRow подставляет значения в Scan по порядку (для функций scanX репозиториев)
type FakeRow struct {
	Values []interface{}
	Err    error
}

func (r FakeRow) Scan(dest ...interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return errors.New("testutil: scan destination count mismatch")
	}
	for i, d := range dest {
		if err := convertAssign(d, r.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

// convertAssign упрощенный аналог присваивания из database/sql:
// sql.Scanner получает значение как есть, nil обнуляет указатель,
// остальные значения приводятся к типу назначения
func convertAssign(dest, src interface{}) error {
	if scanner, ok := dest.(sql.Scanner); ok {
		return scanner.Scan(src)
	}

	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return fmt.Errorf("testutil: destination %T is not a pointer", dest)
	}
	target := dv.Elem()

	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	sv := reflect.ValueOf(src)
	if target.Kind() == reflect.Ptr {
		elem := reflect.New(target.Type().Elem())
		if err := convertAssign(elem.Interface(), src); err != nil {
			return err
		}
		target.Set(elem)
		return nil
	}

	if !sv.Type().ConvertibleTo(target.Type()) {
		return fmt.Errorf("testutil: cannot assign %T to %s", src, target.Type())
	}
	target.Set(sv.Convert(target.Type()))
	return nil
}

// RecordingTx RecordingExecutor в роли транзакции для dbmetrics.WithTx
type RecordingTx struct {
	RecordingExecutor
}

func (t *RecordingTx) Commit() error   { return nil }
func (t *RecordingTx) Rollback() error { return nil }
