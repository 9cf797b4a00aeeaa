// Package mock provides the in-process database and cache doubles the feature
// suite runs against.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a shared in-memory sqlite connection plus the model set registered
// for it, keyed by table name so step definitions can resolve a table string
// back to its model.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the process-wide in-memory database on first call and migrates
// every registered model. Later calls return the same instance; the suite
// relies on a single connection so every scenario sees the same tables.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = connect(models)
	})
	return sharedDb
}

func connect(models map[string]any) *Db {
	sqlDb, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A second connection would get its own empty memory database.
	sqlDb.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDb}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models}
	if err := d.migrate(); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}
	return d
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}
	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// ClearDB wipes every registered table. Called before each scenario.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel resolves a table name to its registered model.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
