package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const baseURL = "http://localhost:8080/v1"

var client = &http.Client{Timeout: 10 * time.Second}

// 對照 config/config.yaml 的種子帳戶，跑一輪端到端情境：
// 儲蓄提款 -> 支票透支 -> 跨帳戶轉帳 -> 月息批次 -> 報表
func main() {
	// 儲蓄帳戶提款 200 (1500 -> 1300, withdrawals=1)
	postJSON("/accounts/SAV-001/withdrawals", map[string]any{"amount": 200})

	// 支票帳戶提款 600：餘額轉負並收一次透支費 (500 -> -135)
	postJSON("/accounts/CHK-001/withdrawals", map[string]any{"amount": 600})

	// 轉帳 100：SAV-001 -> PRM-001 (1300 -> 1200, 20000 -> 20100)
	postJSON("/transfers", map[string]any{"from": "SAV-001", "to": "PRM-001", "amount": 100})

	// 月息批次 (SAV-001 +2, PRM-001 +83.75)
	postJSON("/interest", nil)

	// 報表
	resp, err := client.Get(baseURL + "/report")
	if err != nil {
		log.Fatalf("report failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("--- report ---\n%s", body)
}

// postJSON 送出一筆請求並印出回應
func postJSON(path string, payload any) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("marshal %s: %v", path, err)
		}
		body = bytes.NewReader(raw)
	}
	resp, err := client.Post(baseURL+path, "application/json", body)
	if err != nil {
		log.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	fmt.Printf("POST %s -> %d %s\n", path, resp.StatusCode, raw)
}
