package main

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/sirupsen/logrus"
)

// newWebApp builds the HTTP API. Everything under /api needs basic auth with
// the API key as password.
func newWebApp(gateway *Gateway) *iris.Application {
	app := iris.New()
	app.Logger().SetLevel("disable")

	app.Get("/health", webHealthCheck)

	api := app.Party("/api", gateway.basicAuthMiddleware)
	api.Get("/tables", webTables)
	api.Post("/encode", gateway.webEncode)
	api.Post("/decode", gateway.webDecode)
	api.Post("/seek", gateway.webSeek)
	api.Post("/split", gateway.webSplit)
	api.Get("/usage", gateway.webUsage)
	api.Get("/lossy", gateway.webLossy)
	return app
}

// basicAuthMiddleware is a middleware that enforces Basic Authentication using an API key
func (gateway *Gateway) basicAuthMiddleware(ctx iris.Context) {
	expectedAPIKey := gateway.Config.APIKey
	if expectedAPIKey == "" {
		logf := LoggingFormat{
			Type:    LogType.Web,
			Level:   logrus.ErrorLevel,
			Message: "API_KEY environment variable not set",
		}
		logf.Print()

		ctx.StatusCode(http.StatusInternalServerError)
		ctx.WriteString("Internal Server Error")
		return
	}

	// the username is ignored, the API key is the password
	_, apiKey, ok := ctx.Request().BasicAuth()
	if !ok {
		unauthorized(ctx, "Missing or malformed Authorization header")
		return
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedAPIKey)) != 1 {
		unauthorized(ctx, "Invalid API key")
		return
	}
	ctx.Next()
}

// unauthorized responds with a 401 status and a WWW-Authenticate header
func unauthorized(ctx iris.Context, message string) {
	logf := LoggingFormat{
		Type:    LogType.Web,
		Level:   logrus.WarnLevel,
		Message: message,
	}
	logf.AddField("client_ip", ctx.RemoteAddr())
	logf.Print()

	ctx.Header("WWW-Authenticate", `Basic realm="Restricted"`)
	ctx.StatusCode(http.StatusUnauthorized)
	ctx.WriteString("Unauthorized")
}

// writeError maps caller mistakes to 400 and everything else to 500.
func writeError(ctx iris.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrInvalidRequest) {
		status = http.StatusBadRequest
	}
	ctx.StopWithJSON(status, iris.Map{"error": err.Error()})
}

func readJSON(ctx iris.Context, v interface{}) bool {
	if err := ctx.ReadJSON(v); err != nil {
		logf := LoggingFormat{Type: LogType.Web, Level: logrus.WarnLevel, Message: "malformed request body", Error: err}
		logf.AddField("path", ctx.Path())
		logf.AddField("client_ip", ctx.RemoteAddr())
		logf.Print()
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "malformed JSON body"})
		return false
	}
	return true
}

func (gateway *Gateway) webEncode(ctx iris.Context) {
	var req EncodeRequest
	if !readJSON(ctx, &req) {
		return
	}
	resp, err := gateway.Transcoder.Encode(req, "web")
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(resp)
}

func (gateway *Gateway) webDecode(ctx iris.Context) {
	var req DecodeRequest
	if !readJSON(ctx, &req) {
		return
	}
	resp, err := gateway.Transcoder.Decode(req, "web")
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(resp)
}

func (gateway *Gateway) webSeek(ctx iris.Context) {
	var req SeekRequest
	if !readJSON(ctx, &req) {
		return
	}
	resp, err := gateway.Transcoder.Seek(req, "web")
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(resp)
}

func (gateway *Gateway) webSplit(ctx iris.Context) {
	var req SplitRequest
	if !readJSON(ctx, &req) {
		return
	}
	resp, err := gateway.Transcoder.Split(req, "web")
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(resp)
}

func webTables(ctx iris.Context) {
	ctx.JSON(tableInfo())
}

// sinceParam reads ?hours=N, defaulting to the last day.
func sinceParam(ctx iris.Context) time.Time {
	hours := ctx.URLParamIntDefault("hours", 24)
	if hours <= 0 {
		hours = 24
	}
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}

func (gateway *Gateway) webUsage(ctx iris.Context) {
	if gateway.DB == nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "usage records are not enabled"})
		return
	}
	rows, err := gateway.DB.UsageSummary(ctx.Request().Context(), sinceParam(ctx))
	if err != nil {
		logf := LoggingFormat{Type: LogType.Web, Function: "webUsage", Level: logrus.ErrorLevel, Message: "usage query failed", Error: err}
		logf.Print()
		writeError(ctx, err)
		return
	}
	ctx.JSON(rows)
}

func (gateway *Gateway) webLossy(ctx iris.Context) {
	if gateway.Lossy == nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "lossy samples are not enabled"})
		return
	}
	limit := ctx.URLParamInt64Default("limit", 50)
	counts, err := gateway.Lossy.MissedCounts(ctx.Request().Context(), sinceParam(ctx), limit)
	if err != nil {
		logf := LoggingFormat{Type: LogType.Web, Function: "webLossy", Level: logrus.ErrorLevel, Message: "lossy query failed", Error: err}
		logf.Print()
		writeError(ctx, err)
		return
	}
	ctx.JSON(counts)
}

func webHealthCheck(ctx iris.Context) {
	ctx.StatusCode(http.StatusOK)
	ctx.WriteString("OK")
}
