package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"msggw-gsm7/smpp"
)

// Config is read once from the environment at startup.
type Config struct {
	ServerID         string
	WebListen        string
	APIKey           string
	ProxyProtocol    bool
	PrometheusListen string
	PrometheusPath   string
	AMQPURL          string
	RequestQueue     string
	ResultQueue      string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	MongoURI         string
	MongoDatabase    string
	EncryptionKey    string
	LogLevel         string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig reads .env when present, then the process environment.
func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using existing environment variables")
	}
	hostname, _ := os.Hostname()
	return Config{
		ServerID:         getEnv("SERVER_ID", hostname),
		WebListen:        getEnv("WEB_LISTEN", "0.0.0.0:3000"),
		APIKey:           os.Getenv("API_KEY"),
		ProxyProtocol:    os.Getenv("HAPROXY_PROXY_PROTOCOL") == "true",
		PrometheusListen: os.Getenv("PROMETHEUS_LISTEN"),
		PrometheusPath:   getEnv("PROMETHEUS_PATH", "/metrics"),
		AMQPURL:          os.Getenv("AMQP_URL"),
		RequestQueue:     getEnv("AMQP_QUEUE_REQUESTS", "gsm7_requests"),
		ResultQueue:      getEnv("AMQP_QUEUE_RESULTS", "gsm7_results"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getEnv("POSTGRES_DB", "msggw"),
		MongoURI:         os.Getenv("MONGODB_URI"),
		MongoDatabase:    getEnv("MONGODB_DATABASE", "msggw"),
		EncryptionKey:    os.Getenv("ENCRYPTION_KEY"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

var exit = os.Exit

// abort releases the gateway and signal handler before exiting, as os.Exit
// skips deferred calls.
func abort(gateway *Gateway, stop context.CancelFunc) {
	gateway.Close()
	stop()
	exit(1)
}

func main() {
	cfg := loadConfig()
	initLogging(cfg.LogLevel)
	logf := LoggingFormat{Type: LogType.Startup, Function: "main"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway, err := NewGateway(ctx, cfg)
	if err != nil {
		logf.Level = logrus.FatalLevel
		logf.Message = "failed to start gateway"
		logf.Error = err
		logf.Print()
		os.Exit(1)
	}
	defer gateway.Close()
	gateway.Start(ctx)

	if cfg.PrometheusListen != "" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(NewMetricExporter(cfg.ServerID, gateway.Metrics))
		exporter := &PrometheusExporter{Path: cfg.PrometheusPath, Listen: cfg.PrometheusListen, Registry: registry}
		go func() {
			if err := exporter.Start(); err != nil {
				logf.Level = logrus.ErrorLevel
				logf.Message = "prometheus exporter stopped"
				logf.Error = err
				logf.Print()
			}
		}()
	}

	listener, err := smpp.Listen(cfg.WebListen, nil, cfg.ProxyProtocol)
	if err != nil {
		logf.Level = logrus.FatalLevel
		logf.Message = "failed to listen"
		logf.Error = err
		logf.Print()
		abort(gateway, stop)
	}

	app := newWebApp(gateway)
	go func() {
		<-ctx.Done()
		_ = app.Shutdown(context.Background())
	}()

	logf.Level = logrus.InfoLevel
	logf.Message = "web server listening"
	logf.AddField("address", listener.Addr().String())
	logf.Print()
	if err := app.Run(iris.Listener(listener), iris.WithoutServerError(iris.ErrServerClosed)); err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "web server stopped"
		logf.Error = err
		logf.Print()
	}
}
