package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LossySample records a conversion that lost characters, so operators can see
// which scripts their traffic needs.
type LossySample struct {
	LogID     string    `bson:"log_id"`
	Operation string    `bson:"operation"`
	Single    string    `bson:"single"`
	Locking   string    `bson:"locking"`
	Missed    []string  `bson:"missed"`
	Sample    string    `bson:"sample"`
	Encrypted string    `bson:"encrypted,omitempty"` // full text, sealed with ENCRYPTION_KEY
	Timestamp time.Time `bson:"timestamp"`
}

// LossyStore keeps LossySamples in a Mongo collection. Without a key only
// the redacted sample is stored.
type LossyStore struct {
	collection *mongo.Collection
	samples    chan LossySample
	key        string
}

const lossyCollection = "lossy_samples"

func NewLossyStore(client *mongo.Client, database, key string) *LossyStore {
	return &LossyStore{
		collection: client.Database(database).Collection(lossyCollection),
		samples:    make(chan LossySample, recordBuffer),
		key:        key,
	}
}

// Record keeps records that missed characters and ignores the rest.
func (s *LossyStore) Record(rec ConversionRecord) {
	if rec.Missed == 0 {
		return
	}
	sample := LossySample{
		LogID:     rec.LogID,
		Operation: rec.Operation,
		Single:    rec.Single,
		Locking:   rec.Locking,
		Missed:    rec.MissedChars,
		Sample:    PartiallyRedactMessage(rec.Sample),
		Timestamp: time.Now(),
	}
	if s.key != "" {
		sealed, err := EncryptSample(rec.Sample, s.key)
		if err != nil {
			logf := LoggingFormat{Type: LogType.Lossy, Function: "Record", Level: logrus.ErrorLevel}
			logf.Message = "failed to encrypt lossy sample"
			logf.Error = err
			logf.AddField("logID", rec.LogID)
			logf.Print()
		}
		sample.Encrypted = sealed
	}
	select {
	case s.samples <- sample:
	default:
	}
}

// Run writes queued samples until ctx is done.
func (s *LossyStore) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case sample := <-s.samples:
			insertCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			_, err := s.collection.InsertOne(insertCtx, sample)
			cancel()
			if err != nil {
				logf := LoggingFormat{Type: LogType.Lossy, Function: "Run", Level: logrus.ErrorLevel}
				logf.Message = "failed to store lossy sample"
				logf.Error = err
				logf.AddField("logID", sample.LogID)
				logf.Print()
			}
		}
	}
}

// MissedCounts tallies the characters lost since since, most frequent first.
func (s *LossyStore) MissedCounts(ctx context.Context, since time.Time, limit int64) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		{{Key: "$unwind", Value: "$missed"}},
		{{Key: "$group", Value: bson.M{"_id": "$missed", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := s.collection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := map[string]int64{}
	for cur.Next(ctx) {
		var row struct {
			Char  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Char] = row.Count
	}
	return counts, cur.Err()
}
