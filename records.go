package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConversionRecord is stored for every transcoding request.
type ConversionRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LogID      string    `gorm:"index;not null" json:"log_id"`
	Operation  string    `gorm:"index" json:"operation"` // encode, decode, seek, split
	Source     string    `json:"source"`                 // web or amqp
	Coding     string    `json:"coding"`                 // gsm7, ucs2, latin1
	Single     string    `json:"single"`
	Locking    string    `json:"locking"`
	Result     string    `json:"result,omitempty"` // seek outcome
	CodePoints int       `json:"code_points"`
	Octets     int       `json:"octets"`
	Segments   int       `json:"segments,omitempty"`
	Missed     int       `json:"missed"`
	Escapes    int       `json:"escapes"`
	CreatedAt  time.Time `json:"created_at"`

	// not persisted, used by the lossy sample store
	Sample      string   `gorm:"-" json:"-"`
	MissedChars []string `gorm:"-" json:"-"`
}

// RecordSink receives a copy of every record. Implementations must not block.
type RecordSink interface {
	Record(rec ConversionRecord)
}

// RecordStore writes records to Postgres from a background goroutine.
type RecordStore struct {
	db   *gorm.DB
	recs chan ConversionRecord
}

const recordBuffer = 256

// NewRecordStore opens dsn and migrates the records table.
func NewRecordStore(dsn string) (*RecordStore, error) {
	logf := LoggingFormat{Type: LogType.Records, Function: "NewRecordStore"}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logf.Message = "failed to open postgres"
		logf.Error = err
		return nil, logf.ToError()
	}
	if err := db.AutoMigrate(&ConversionRecord{}); err != nil {
		logf.Message = "failed to migrate conversion records"
		logf.Error = err
		return nil, logf.ToError()
	}
	return newRecordStore(db), nil
}

func newRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db, recs: make(chan ConversionRecord, recordBuffer)}
}

// Record queues rec, dropping it when the writer has fallen behind.
func (s *RecordStore) Record(rec ConversionRecord) {
	select {
	case s.recs <- rec:
	default:
		logf := LoggingFormat{Type: LogType.Records, Level: logrus.WarnLevel, Message: "record queue full, dropping"}
		logf.AddField("logID", rec.LogID)
		logf.Print()
	}
}

// Run inserts queued records until ctx is done.
func (s *RecordStore) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case rec := <-s.recs:
			logf := LoggingFormat{Type: LogType.Records, Function: "Run"}
			logf.AddField("logID", rec.LogID)
			logf.AddField("operation", rec.Operation)

			if err := s.insert(ctx, rec); err != nil {
				logf.Level = logrus.ErrorLevel
				logf.Message = "insert failed"
				logf.Error = err
				logf.Print()
				continue
			}
			logf.Level = logrus.DebugLevel
			logf.Message = "record inserted"
			logf.Print()
		}
	}
}

func (s *RecordStore) insert(ctx context.Context, rec ConversionRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create conversion record: %w", err)
	}
	return nil
}

// PartiallyRedactMessage keeps the first few characters of message for
// operators and hides the rest.
func PartiallyRedactMessage(message string) string {
	runes := []rune(message)
	if len(runes) <= 10 {
		return "**********"
	}
	return string(runes[:5]) + "*****"
}
