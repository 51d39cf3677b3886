package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Gateway wires the transcoder to its optional backends. Every backend is
// enabled by its own configuration and may be nil.
type Gateway struct {
	Config      Config
	Transcoder  *Transcoder
	Metrics     *Metrics
	AMQPClient  *AMQPClient
	DB          *DB
	Records     *RecordStore
	MongoClient *mongo.Client
	Lossy       *LossyStore
}

// NewGateway connects the configured backends. A backend that fails to come
// up is fatal, one that is not configured is skipped.
func NewGateway(ctx context.Context, cfg Config) (*Gateway, error) {
	logf := LoggingFormat{Type: LogType.Startup, Function: "NewGateway"}
	gateway := &Gateway{Config: cfg, Metrics: NewMetrics()}

	var sinks []RecordSink
	if cfg.PostgresHost != "" {
		dsn := postgresDSN(cfg)
		records, err := NewRecordStore(dsn)
		if err != nil {
			return nil, err
		}
		db, err := NewDB(ctx, dsn)
		if err != nil {
			logf.Message = "failed to open usage pool"
			logf.Error = err
			return nil, logf.ToError()
		}
		gateway.Records, gateway.DB = records, db
		sinks = append(sinks, records)
	}

	if cfg.MongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logf.Message = "failed to connect to mongo"
			logf.Error = err
			return nil, logf.ToError()
		}
		gateway.MongoClient = client
		gateway.Lossy = NewLossyStore(client, cfg.MongoDatabase, cfg.EncryptionKey)
		sinks = append(sinks, gateway.Lossy)
	}

	if cfg.AMQPURL != "" {
		gateway.AMQPClient = NewAMQPClient(cfg.AMQPURL, []string{cfg.RequestQueue, cfg.ResultQueue})
	}

	gateway.Transcoder = NewTranscoder(gateway.Metrics, sinks...)
	return gateway, nil
}

// Start runs the background writers and the queue worker until ctx is done.
func (gateway *Gateway) Start(ctx context.Context) {
	if gateway.Records != nil {
		go gateway.Records.Run(ctx)
	}
	if gateway.Lossy != nil {
		go gateway.Lossy.Run(ctx)
	}
	if gateway.AMQPClient != nil {
		worker := &jobWorker{
			transcoder: gateway.Transcoder,
			publisher:  gateway.AMQPClient,
			results:    gateway.Config.ResultQueue,
		}
		go worker.consume(ctx, gateway.AMQPClient, gateway.Config.RequestQueue)
	}
}

// Close releases every backend connection.
func (gateway *Gateway) Close() {
	logf := LoggingFormat{Type: LogType.Startup, Function: "Close", Level: logrus.WarnLevel}
	if gateway.AMQPClient != nil {
		if err := gateway.AMQPClient.Close(); err != nil {
			logf.Message = "failed to close amqp client"
			logf.Error = err
			logf.Print()
		}
	}
	if gateway.DB != nil {
		gateway.DB.Close()
	}
	if gateway.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := gateway.MongoClient.Disconnect(ctx); err != nil {
			logf.Message = "failed to disconnect mongo"
			logf.Error = err
			logf.Print()
		}
	}
}
