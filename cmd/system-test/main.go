// Command system-test exercises a running API service end to end:
// catalog, event listing, manual categorization and the proposition
// CRUD. It needs the ETL to have completed at least one cycle.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

var (
	baseURL = "http://localhost:5000"
	client  = &http.Client{Timeout: 10 * time.Second}

	testRunID = fmt.Sprintf("test-run-%d", time.Now().UnixNano())
)

func main() {
	log.Println("--- Starting System Smoke Test ---")
	if url := os.Getenv("API_BASE_URL"); url != "" {
		baseURL = url
	}

	if err := testHealth(); err != nil {
		log.Fatalf("--- TEST FAILED: Health --- \n%v", err)
	}
	if err := testAreaCatalog(); err != nil {
		log.Fatalf("--- TEST FAILED: Area Catalog --- \n%v", err)
	}
	if err := testEventListing(); err != nil {
		log.Fatalf("--- TEST FAILED: Event Listing --- \n%v", err)
	}
	if err := testManualCategorization(); err != nil {
		log.Fatalf("--- TEST FAILED: Manual Categorization --- \n%v", err)
	}
	if err := testPropositionCRUD(); err != nil {
		log.Fatalf("--- TEST FAILED: Proposition CRUD --- \n%v", err)
	}

	log.Println("--- ALL TESTS PASSED ---")
}

func getJSON(path string, out any) error {
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned non-200 status: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %v", path, err)
	}
	return nil
}

func testHealth() error {
	log.Println("Running Test 1: Health...")
	var health map[string]string
	if err := getJSON("/api/health", &health); err != nil {
		return err
	}
	if health["status"] != "ok" {
		return fmt.Errorf("unexpected health status: %q", health["status"])
	}
	log.Println("Test 1: Health... PASS")
	return nil
}

func testAreaCatalog() error {
	log.Println("Running Test 2: Area Catalog...")

	var areas []models.Area
	if err := getJSON("/api/areas", &areas); err != nil {
		return err
	}
	if len(areas) == 0 {
		return fmt.Errorf("area catalog is empty, seed did not run")
	}
	for _, a := range areas {
		if a.Name == "" {
			return fmt.Errorf("catalog contains an unnamed area")
		}
	}
	log.Printf("  Catalog has %d areas", len(areas))

	var counters []models.AreaCounter
	if err := getJSON("/api/areas/contadores", &counters); err != nil {
		return err
	}
	if len(counters) != len(areas) {
		return fmt.Errorf("expected %d counters, got %d", len(areas), len(counters))
	}
	log.Println("Test 2: Area Catalog... PASS")
	return nil
}

func testEventListing() error {
	log.Println("Running Test 3: Event Listing...")
	log.Println("  (This test assumes the ETL has run at least once)")

	var events []models.Event
	if err := getJSON("/api/eventos?limit=5", &events); err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("no events stored, run the ETL first")
	}
	if len(events) > 5 {
		return fmt.Errorf("limit=5 not honored, got %d events", len(events))
	}
	for _, ev := range events {
		if ev.ExternalID == "" || ev.Source == "" {
			return fmt.Errorf("event missing identity fields: %+v", ev)
		}
	}

	var backlog struct {
		Total   int            `json:"total"`
		Eventos []models.Event `json:"eventos"`
	}
	if err := getJSON("/api/eventos/nao-categorizados", &backlog); err != nil {
		return err
	}
	log.Printf("  %d uncategorized events in backlog", backlog.Total)
	log.Println("Test 3: Event Listing... PASS")
	return nil
}

func testManualCategorization() error {
	log.Println("Running Test 4: Manual Categorization...")

	var events []models.Event
	if err := getJSON("/api/eventos?limit=1", &events); err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("no events to categorize")
	}
	target := events[0]

	payload, _ := json.Marshal(map[string]string{"area_tecnica": "Jurídico"})
	resp, err := client.Post(
		fmt.Sprintf("%s/api/eventos/%s/categorizar", baseURL, target.ExternalID),
		"application/json", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to POST categorization: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("categorizar returned non-200 status: %s", resp.Status)
	}

	// An unknown area must be rejected.
	payload, _ = json.Marshal(map[string]string{"area_tecnica": "Astrologia"})
	resp, err = client.Post(
		fmt.Sprintf("%s/api/eventos/%s/categorizar", baseURL, target.ExternalID),
		"application/json", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to POST categorization: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("unknown area accepted with status %s", resp.Status)
	}

	log.Println("Test 4: Manual Categorization... PASS")
	return nil
}

func testPropositionCRUD() error {
	log.Println("Running Test 5: Proposition CRUD...")

	prop := models.Proposition{
		BillNumber: "PL " + testRunID,
		Summary:    "Proposição criada pelo teste de sistema",
		Status:     "Em tramitação",
		Position:   models.PositionNeutral,
		Area:       "Jurídico",
	}
	payload, _ := json.Marshal(prop)
	resp, err := client.Post(baseURL+"/api/proposicoes", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to POST proposition: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("proposicoes returned non-201 status: %s", resp.Status)
	}
	var created models.Proposition
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("failed to decode created proposition: %v", err)
	}
	if created.ID == 0 {
		return fmt.Errorf("created proposition has no ID")
	}

	created.Position = models.PositionFavorable
	payload, _ = json.Marshal(created)
	req, _ := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/proposicoes/%d", baseURL, created.ID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to PUT proposition: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proposition update returned non-200 status: %s", resp.Status)
	}

	req, _ = http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/api/proposicoes/%d", baseURL, created.ID), nil)
	resp, err = client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to DELETE proposition: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("proposition delete returned non-204 status: %s", resp.Status)
	}

	log.Println("Test 5: Proposition CRUD... PASS")
	return nil
}
