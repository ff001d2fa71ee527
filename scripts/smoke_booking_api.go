package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

func dataField(res map[string]interface{}, key string) string {
	if data, ok := res["data"].(map[string]interface{}); ok {
		if v, ok := data[key].(string); ok {
			return v
		}
	}
	return ""
}

func main() {
	color.Cyan("🚀 Starting Booking Flow Smoke Test\n")

	// 1. Register a fresh tenant
	color.Yellow("\n1. Register Tenant")
	suffix := time.Now().UnixNano()
	registerReq := map[string]interface{}{
		"tenant_name": fmt.Sprintf("Smoke Test Rooms %d", suffix),
		"full_name":   "Smoke Tester",
		"email":       fmt.Sprintf("smoke+%d@example.com", suffix),
		"password":    "smoke-test-password",
	}
	resp, body, err := sendRequest("POST", "/auth/v1/register", "", registerReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	registerResp := decode(body)
	prettyPrint(registerResp)

	token := dataField(registerResp, "access_token")
	if token == "" {
		color.Red("No access token returned, aborting")
		os.Exit(1)
	}

	// 2. Create a venue
	color.Yellow("\n2. Create Venue")
	venueReq := map[string]interface{}{
		"name":          "Main Venue",
		"address_line1": "Jl. Smoke Test No. 1",
		"city":          "Jakarta",
		"timezone":      "Asia/Jakarta",
	}
	resp, body, err = sendRequest("POST", "/catalog/v1/venues", token, venueReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	venueResp := decode(body)
	prettyPrint(venueResp)
	venueID := dataField(venueResp, "id")

	// 3. Create an activity
	color.Yellow("\n3. Create Activity")
	activityReq := map[string]interface{}{
		"venue_id":         venueID,
		"name":             "The Vault",
		"slug":             fmt.Sprintf("the-vault-%d", suffix),
		"duration_minutes": 60,
		"min_party_size":   2,
		"max_party_size":   6,
		"price":            150000,
	}
	resp, body, err = sendRequest("POST", "/catalog/v1/activities", token, activityReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	activityResp := decode(body)
	prettyPrint(activityResp)
	activityID := dataField(activityResp, "id")

	// 4. Create a slot for next week
	color.Yellow("\n4. Create Schedule Slot")
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	slotReq := map[string]interface{}{
		"activity_id": activityID,
		"date":        date,
		"start_time":  "14:00",
		"end_time":    "15:00",
		"capacity":    6,
	}
	resp, body, err = sendRequest("POST", "/catalog/v1/slots", token, slotReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	slotResp := decode(body)
	prettyPrint(slotResp)
	slotID := dataField(slotResp, "id")

	// 5. Availability should now show the slot
	color.Yellow("\n5. Check Availability")
	availURL := fmt.Sprintf("/booking/v1/availability?activity_id=%s&date_from=%s&date_to=%s&party_size=4", activityID, date, date)
	resp, body, err = sendRequest("GET", availURL, "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 6. Create a booking
	color.Yellow("\n6. Create Booking")
	bookingReq := map[string]interface{}{
		"activity_id":    activityID,
		"slot_id":        slotID,
		"party_size":     4,
		"customer_name":  "Jamie Customer",
		"customer_email": "jamie@example.com",
		"customer_phone": "+62 812-0000-0000",
	}
	resp, body, err = sendRequest("POST", "/booking/v1", token, bookingReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	bookingResp := decode(body)
	prettyPrint(bookingResp)
	bookingID := dataField(bookingResp, "id")

	// 7. Cancel it again (booking is a week out, inside nothing, so allowed)
	color.Yellow("\n7. Cancel Booking")
	cancelReq := map[string]interface{}{"reason": "smoke test cleanup"}
	resp, body, err = sendRequest("POST", "/booking/v1/"+bookingID+"/cancel?confirm=true", token, cancelReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\n✅ Smoke test finished")
}
