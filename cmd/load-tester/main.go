// Command load-tester fires concurrent read traffic at the API service
// and reports throughput per endpoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"
)

var (
	successCount atomic.Uint64
	failureCount atomic.Uint64

	numWorkers  = flag.Int("workers", 20, "Number of concurrent workers")
	numRequests = flag.Int("requests", 500, "Total requests to send")
	baseURL     = flag.String("base-url", "http://localhost:5000", "API service base URL")

	client = &http.Client{
		Timeout: 30 * time.Second,
	}

	searchTerms = []string{"saúde", "educação", "tributação", "saneamento", "licitação"}
)

// randomPath picks one of the read endpoints, weighted towards the
// event listing since that is what the dashboard polls.
func randomPath() string {
	switch rand.Intn(5) {
	case 0:
		return "/api/areas/contadores"
	case 1:
		return "/api/eventos/buscar?q=" + url.QueryEscape(searchTerms[rand.Intn(len(searchTerms))])
	case 2:
		return fmt.Sprintf("/api/eventos?limit=%d", 10+rand.Intn(90))
	default:
		return "/api/eventos"
	}
}

func runWorker(wg *sync.WaitGroup, requests <-chan string) {
	defer wg.Done()
	for path := range requests {
		resp, err := client.Get(*baseURL + path)
		if err != nil {
			log.Printf("Request failed: %v", err)
			failureCount.Add(1)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("Got non-200 status for %s: %s", path, resp.Status)
			failureCount.Add(1)
			continue
		}
		successCount.Add(1)
	}
}

func main() {
	flag.Parse()

	log.Printf("--- Starting Load Test ---")
	log.Printf("Target: %s, %d requests over %d workers", *baseURL, *numRequests, *numWorkers)
	log.Printf("----------------------------")

	startTime := time.Now()

	requests := make(chan string, *numWorkers)
	var wg sync.WaitGroup
	wg.Add(*numWorkers)
	for i := 0; i < *numWorkers; i++ {
		go runWorker(&wg, requests)
	}

	for i := 0; i < *numRequests; i++ {
		requests <- randomPath()
	}
	close(requests)

	wg.Wait()
	duration := time.Since(startTime)

	log.Printf("--- Test Complete ---")
	log.Printf("Duration: %s", duration)
	log.Printf("  Success: %d", successCount.Load())
	log.Printf("  Failure: %d", failureCount.Load())
	log.Printf("  Rate:    %.2f req/s", float64(successCount.Load())/duration.Seconds())
}
