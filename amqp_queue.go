package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

var (
	errNotConnected  = errors.New("amqp: not connected")
	errAlreadyClosed = errors.New("amqp: connection already closed")
	errNacked        = errors.New("amqp: publish not acknowledged")
)

// AMQPClient keeps one channel open to the broker, redialling and declaring
// its queues again whenever the connection or channel drops.
type AMQPClient struct {
	m               sync.Mutex
	queues          []string
	connection      *amqp.Connection
	channel         *amqp.Channel
	done            chan struct{}
	notifyConnClose chan *amqp.Error
	notifyChanClose chan *amqp.Error
	notifyConfirm   chan amqp.Confirmation
	isReady         bool
}

const (
	reconnectDelay = 5 * time.Second
	reInitDelay    = 2 * time.Second
	resendDelay    = 2 * time.Second
)

// NewAMQPClient starts connecting to addr in the background.
func NewAMQPClient(addr string, queues []string) *AMQPClient {
	client := &AMQPClient{
		queues: queues,
		done:   make(chan struct{}),
	}
	go client.handleReconnect(addr)
	return client
}

func (client *AMQPClient) log(level logrus.Level, msg string, err error) {
	logf := LoggingFormat{Type: LogType.Queue, Level: level, Message: msg, Error: err}
	logf.Print()
}

// Close will cleanly shut down the channel and connection.
func (client *AMQPClient) Close() error {
	client.m.Lock()
	defer client.m.Unlock()

	select {
	case <-client.done:
		return errAlreadyClosed
	default:
	}
	close(client.done)
	client.isReady = false

	var errs []error
	if client.channel != nil {
		errs = append(errs, client.channel.Close())
	}
	if client.connection != nil {
		errs = append(errs, client.connection.Close())
	}
	return errors.Join(errs...)
}

func (client *AMQPClient) setReady(ready bool) {
	client.m.Lock()
	client.isReady = ready
	client.m.Unlock()
}

func (client *AMQPClient) handleReconnect(addr string) {
	for {
		client.setReady(false)

		conn, err := amqp.Dial(addr)
		if err != nil {
			client.log(logrus.WarnLevel, "failed to connect, retrying", err)
			select {
			case <-client.done:
				return
			case <-time.After(reconnectDelay):
			}
			continue
		}
		client.changeConnection(conn)
		client.log(logrus.InfoLevel, "connected", nil)

		if done := client.handleReInit(conn); done {
			return
		}
	}
}

func (client *AMQPClient) handleReInit(conn *amqp.Connection) bool {
	for {
		client.setReady(false)

		if err := client.init(conn); err != nil {
			client.log(logrus.WarnLevel, "failed to initialize channel, retrying", err)
			select {
			case <-client.done:
				return true
			case <-client.notifyConnClose:
				client.log(logrus.WarnLevel, "connection closed, reconnecting", nil)
				return false
			case <-time.After(reInitDelay):
			}
			continue
		}

		select {
		case <-client.done:
			return true
		case <-client.notifyConnClose:
			client.log(logrus.WarnLevel, "connection closed, reconnecting", nil)
			return false
		case <-client.notifyChanClose:
			client.log(logrus.WarnLevel, "channel closed, re-initializing", nil)
		}
	}
}

// init opens a confirming channel and declares every queue.
func (client *AMQPClient) init(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if err := ch.Confirm(false); err != nil {
		return err
	}
	for _, queue := range client.queues {
		_, err := ch.QueueDeclare(
			queue,
			true,  // Durable
			false, // Delete when unused
			false, // Exclusive
			false, // No-wait
			nil,   // Arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue '%s': %w", queue, err)
		}
	}

	client.changeChannel(ch)
	client.setReady(true)
	client.log(logrus.InfoLevel, "channel ready", nil)
	return nil
}

func (client *AMQPClient) changeConnection(conn *amqp.Connection) {
	client.m.Lock()
	defer client.m.Unlock()
	client.connection = conn
	client.notifyConnClose = make(chan *amqp.Error, 1)
	client.connection.NotifyClose(client.notifyConnClose)
}

func (client *AMQPClient) changeChannel(ch *amqp.Channel) {
	client.m.Lock()
	defer client.m.Unlock()
	client.channel = ch
	client.notifyChanClose = make(chan *amqp.Error, 1)
	client.notifyConfirm = make(chan amqp.Confirmation, 1)
	client.channel.NotifyClose(client.notifyChanClose)
	client.channel.NotifyPublish(client.notifyConfirm)
}

// Publish sends data to queueName and waits for the broker's confirm,
// retrying until it is acknowledged or ctx ends.
func (client *AMQPClient) Publish(ctx context.Context, queueName string, data []byte) error {
	for {
		confirms, err := client.unsafePublish(ctx, queueName, data)
		if err == nil {
			select {
			case confirm := <-confirms:
				if confirm.Ack {
					return nil
				}
				err = errNacked
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		client.log(logrus.WarnLevel, "publish failed, retrying", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-client.done:
			return errAlreadyClosed
		case <-time.After(resendDelay):
		}
	}
}

func (client *AMQPClient) unsafePublish(ctx context.Context, queueName string, data []byte) (<-chan amqp.Confirmation, error) {
	client.m.Lock()
	defer client.m.Unlock()

	if !client.isReady || client.channel == nil {
		return nil, errNotConnected
	}

	pubCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := client.channel.PublishWithContext(
		pubCtx,
		"",        // Exchange
		queueName, // Routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         data,
		},
	)
	return client.notifyConfirm, err
}

// ConsumeMessages starts consuming queueName with manual acknowledgements and
// one message in flight.
func (client *AMQPClient) ConsumeMessages(queueName string) (<-chan amqp.Delivery, error) {
	client.m.Lock()
	defer client.m.Unlock()

	if !client.isReady || client.channel == nil {
		return nil, errNotConnected
	}
	if err := client.channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}
	return client.channel.Consume(
		queueName,
		"",
		false, // auto-ack
		false,
		false,
		false,
		nil,
	)
}
