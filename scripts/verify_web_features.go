package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Smoke test against a running gateway:
//
//	BASE_URL=http://localhost:3000 API_KEY=... go run ./scripts
func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		println("API_KEY is required")
		os.Exit(1)
	}

	println("\n--- Test 1: POST /api/seek ---")
	report(post(baseURL, apiKey, "/api/seek", map[string]interface{}{"text": "Çok güzel, teşekkürler!"}))

	println("\n--- Test 2: POST /api/encode (auto tables) ---")
	status, body, err := post(baseURL, apiKey, "/api/encode", map[string]interface{}{"text": "Ğüzel", "auto": true})
	report(status, body, err)

	if err == nil && status == http.StatusOK {
		var encoded struct {
			Payload string          `json:"payload"`
			Tables  json.RawMessage `json:"tables"`
		}
		if err := json.Unmarshal([]byte(body), &encoded); err == nil {
			println("\n--- Test 3: POST /api/decode (round trip) ---")
			report(post(baseURL, apiKey, "/api/decode", map[string]interface{}{
				"payload": encoded.Payload,
				"tables":  encoded.Tables,
			}))
		}
	}

	println("\n--- Test 4: POST /api/split ---")
	long := ""
	for len(long) < 200 {
		long += "Hello [world] "
	}
	report(post(baseURL, apiKey, "/api/split", map[string]interface{}{"text": long}))
}

func report(status int, body string, err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Status: %d\nBody: %s\n", status, body)
}

func post(baseURL, apiKey, path string, data interface{}) (int, string, error) {
	jsonBytes, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", baseURL+path, bytes.NewBuffer(jsonBytes))
	req.SetBasicAuth("gateway", apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), nil
}
