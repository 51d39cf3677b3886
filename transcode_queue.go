package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// TranscodeJob is one request read from the request queue. Op selects which
// of the request fields is used.
type TranscodeJob struct {
	ID     string         `json:"id"`
	Op     string         `json:"op"` // encode, decode, seek, split
	Encode *EncodeRequest `json:"encode,omitempty"`
	Decode *DecodeRequest `json:"decode,omitempty"`
	Seek   *SeekRequest   `json:"seek,omitempty"`
	Split  *SplitRequest  `json:"split,omitempty"`
}

// TranscodeResult is published to the result queue for every job.
type TranscodeResult struct {
	ID     string          `json:"id"`
	Op     string          `json:"op"`
	Error  string          `json:"error,omitempty"`
	Encode *EncodeResponse `json:"encode,omitempty"`
	Decode *DecodeResponse `json:"decode,omitempty"`
	Seek   *SeekResponse   `json:"seek,omitempty"`
	Split  *SplitResponse  `json:"split,omitempty"`
}

var errMissingBody = errors.New("job has no request for its op")

// Run executes job and wraps the outcome, failures included.
func (t *Transcoder) Run(job TranscodeJob) TranscodeResult {
	const source = "amqp"
	res := TranscodeResult{ID: job.ID, Op: job.Op}

	var err error
	switch job.Op {
	case "encode":
		if job.Encode == nil {
			err = errMissingBody
			break
		}
		var out EncodeResponse
		if out, err = t.Encode(*job.Encode, source); err == nil {
			res.Encode = &out
		}
	case "decode":
		if job.Decode == nil {
			err = errMissingBody
			break
		}
		var out DecodeResponse
		if out, err = t.Decode(*job.Decode, source); err == nil {
			res.Decode = &out
		}
	case "seek":
		if job.Seek == nil {
			err = errMissingBody
			break
		}
		var out SeekResponse
		if out, err = t.Seek(*job.Seek, source); err == nil {
			res.Seek = &out
		}
	case "split":
		if job.Split == nil {
			err = errMissingBody
			break
		}
		var out SplitResponse
		if out, err = t.Split(*job.Split, source); err == nil {
			res.Split = &out
		}
	default:
		err = invalid("unknown op %q", job.Op)
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

type publisher interface {
	Publish(ctx context.Context, queueName string, data []byte) error
}

// jobWorker turns deliveries from the request queue into published results.
type jobWorker struct {
	transcoder *Transcoder
	publisher  publisher
	results    string
}

// handle processes one delivery. Malformed payloads are rejected without
// requeueing; a result that cannot be published puts the job back.
func (w *jobWorker) handle(ctx context.Context, d amqp.Delivery) {
	logf := LoggingFormat{Type: LogType.Queue, Function: "handle"}
	logf.AddField("deliveryTag", d.DeliveryTag)

	var job TranscodeJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logf.Level = logrus.WarnLevel
		logf.Message = "malformed job, dropping"
		logf.Error = err
		logf.Print()
		_ = d.Nack(false, false)
		return
	}
	logf.AddField("jobID", job.ID)

	body, err := json.Marshal(w.transcoder.Run(job))
	if err == nil {
		err = w.publisher.Publish(ctx, w.results, body)
	}
	if err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to publish result, requeueing job"
		logf.Error = err
		logf.Print()
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

// consume reads the request queue until ctx is done, subscribing again after
// every broker disconnect.
func (w *jobWorker) consume(ctx context.Context, client *AMQPClient, queue string) {
	for {
		deliveries, err := client.ConsumeMessages(queue)
		if err != nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(reInitDelay):
			}
			continue
		}

		logf := LoggingFormat{Type: LogType.Queue, Level: logrus.InfoLevel, Message: "consuming transcode jobs"}
		logf.AddField("queue", queue)
		logf.Print()

	loop:
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					break loop
				}
				w.handle(ctx, d)
			}
		}
	}
}
