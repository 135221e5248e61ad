package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// mockMetricsRecorder is a mock implementation of MetricsRecorder for testing
type mockMetricsRecorder struct {
	queries   []queryRecord
	dbStats   []sql.DBStats
	statsCall int
}

type queryRecord struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.queries = append(m.queries, queryRecord{
		operation: operation,
		table:     table,
		duration:  duration,
		err:       err,
	})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	if dbStats, ok := stats.(sql.DBStats); ok {
		m.dbStats = append(m.dbStats, dbStats)
		m.statsCall++
	}
}

// testModel is a simple model for testing (using string ID for SQLite compatibility)
type testModel struct {
	ID        string `gorm:"type:text;primaryKey"`
	Name      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (testModel) TableName() string {
	return "test_models"
}

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(&testModel{})
	require.NoError(t, err, "Failed to migrate test model")

	return db
}

func TestRegisterMetricsCallbacks_Query(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	testData := testModel{
		ID:   uuid.New().String(),
		Name: "test",
	}
	err := db.Create(&testData).Error
	require.NoError(t, err)

	recorder.queries = nil

	var result testModel
	err = db.First(&result).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "select", query.operation, "Operation should be 'select'")
	assert.Equal(t, "test_models", query.table, "Table should be 'test_models'")
	assert.Greater(t, query.duration, time.Duration(0), "Duration should be greater than 0")
	assert.NoError(t, query.err, "Query should not have error")
}

func TestRegisterMetricsCallbacks_Create(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	testData := testModel{
		ID:   uuid.New().String(),
		Name: "test create",
	}
	err := db.Create(&testData).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "insert", query.operation, "Operation should be 'insert'")
	assert.Equal(t, "test_models", query.table, "Table should be 'test_models'")
	assert.Greater(t, query.duration, time.Duration(0), "Duration should be greater than 0")
	assert.NoError(t, query.err, "Query should not have error")
}

func TestRegisterMetricsCallbacks_Update(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	testData := testModel{
		ID:   uuid.New().String(),
		Name: "test",
	}
	err := db.Create(&testData).Error
	require.NoError(t, err)

	recorder.queries = nil

	err = db.Model(&testData).Update("Name", "updated").Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "update", query.operation, "Operation should be 'update'")
	assert.Equal(t, "test_models", query.table, "Table should be 'test_models'")
}

func TestRegisterMetricsCallbacks_Delete(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	testData := testModel{
		ID:   uuid.New().String(),
		Name: "test",
	}
	err := db.Create(&testData).Error
	require.NoError(t, err)

	recorder.queries = nil

	err = db.Delete(&testData).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "delete", query.operation, "Operation should be 'delete'")
	assert.Equal(t, "test_models", query.table, "Table should be 'test_models'")
}

func TestRegisterMetricsCallbacks_QueryError(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	var result testModel
	err := db.First(&result, "id = ?", uuid.New().String()).Error
	require.Error(t, err, "Expected query to fail")

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "select", query.operation, "Operation should be 'select'")
	assert.Error(t, query.err, "Query should have error")
}

func TestRegisterMetricsCallbacks_MultipleOperations(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	testID := uuid.New().String()
	testData := testModel{
		ID:   testID,
		Name: "test",
	}

	err := db.Create(&testData).Error
	require.NoError(t, err)

	var result testModel
	err = db.First(&result, "id = ?", testID).Error
	require.NoError(t, err)

	err = db.Model(&testData).Update("Name", "updated").Error
	require.NoError(t, err)

	err = db.Delete(&testData).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 4, "Expected four queries to be recorded")

	operations := []string{"insert", "select", "update", "delete"}
	for i, expectedOp := range operations {
		assert.Equal(t, expectedOp, recorder.queries[i].operation,
			"Operation %d should be '%s'", i, expectedOp)
		assert.Equal(t, "test_models", recorder.queries[i].table,
			"Table for operation %d should be 'test_models'", i)
	}
}

func TestRegisterMetricsCallbacks_Transaction(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Transaction(func(tx *gorm.DB) error {
		testData1 := testModel{
			ID:   uuid.New().String(),
			Name: "test1",
		}
		if err := tx.Create(&testData1).Error; err != nil {
			return err
		}

		testData2 := testModel{
			ID:   uuid.New().String(),
			Name: "test2",
		}
		return tx.Create(&testData2).Error
	})
	require.NoError(t, err)

	insertCount := 0
	for _, query := range recorder.queries {
		if query.operation == "insert" {
			insertCount++
		}
	}
	assert.GreaterOrEqual(t, insertCount, 2, "Expected at least two insert operations")
}

func TestRegisterMetricsCallbacks_TransactionRollback(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Transaction(func(tx *gorm.DB) error {
		testData := testModel{
			ID:   uuid.New().String(),
			Name: "test",
		}
		if err := tx.Create(&testData).Error; err != nil {
			return err
		}
		return errors.New("forced rollback")
	})
	require.Error(t, err, "Expected transaction to fail")

	// The insert is recorded even though the transaction rolled back
	assert.GreaterOrEqual(t, len(recorder.queries), 1, "Expected at least one query to be recorded")
}

func TestStartDBStatsCollector_Shutdown(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	done := StartDBStatsCollector(db, recorder)

	time.Sleep(50 * time.Millisecond)

	close(done)

	time.Sleep(50 * time.Millisecond)

	// Test passes if no panic or deadlock occurs
}
