package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// LogPayload is the body of POST /log
type LogPayload struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}

// Result holds the outcome of a single request
type Result struct {
	Level        string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// Stats aggregates results across workers
type Stats struct {
	mu            sync.Mutex
	Total         int
	Accepted      int
	Failed        int
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	LevelCounts   map[string]int
	ErrorCounts   map[string]int
}

func (s *Stats) add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LevelCounts[r.Level]++
	if r.Err != nil {
		s.Failed++
		s.ErrorCounts[r.Err.Error()]++
		return
	}

	s.StatusCounts[r.StatusCode]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if r.StatusCode == http.StatusNoContent {
		s.Accepted++
	} else {
		s.Failed++
	}
}

func (s *Stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Accepted + s.Failed
}

var levels = []string{"Message", "WarningError", "Error"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the log service")
	delayMs := flag.Int("delay", 0, "Delay between requests of one worker in milliseconds")
	flag.Parse()

	fmt.Printf("Load testing %s/log\n", *baseURL)
	fmt.Printf("Concurrency: %d goroutines, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	stats := &Stats{
		Total:         *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		LevelCounts:   make(map[string]int),
		ErrorCounts:   make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			fmt.Printf("Progress: %d/%d\n", stats.completed(), stats.Total)
		}
	}()

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, time.Duration(*delayMs)*time.Millisecond, jobs, stats)
		}(i)
	}
	wg.Wait()

	printResults(stats, time.Since(start))
}

func worker(id int, baseURL string, delay time.Duration, jobs <-chan int, stats *Stats) {
	client := &http.Client{Timeout: 10 * time.Second}

	for jobID := range jobs {
		if delay > 0 {
			time.Sleep(delay)
		}

		level := levels[rand.Intn(len(levels))]
		body, err := json.Marshal(LogPayload{
			Message: fmt.Sprintf("load test worker %d job %d", id, jobID),
			Level:   level,
		})
		if err != nil {
			stats.add(Result{Level: level, Err: err})
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/log", bytes.NewReader(body))
		if err != nil {
			stats.add(Result{Level: level, Err: err})
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", fmt.Sprintf("load-%d-%d", id, jobID))

		sent := time.Now()
		resp, err := client.Do(req)
		result := Result{Level: level, ResponseTime: time.Since(sent), Err: err}
		if err == nil {
			result.StatusCode = resp.StatusCode
			_ = resp.Body.Close()
		}
		stats.add(result)
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *Stats, elapsed time.Duration) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Total requests:    %d\n", stats.Total)
	fmt.Printf("Accepted (204):    %d\n", stats.Accepted)
	fmt.Printf("Failed:            %d\n", stats.Failed)
	fmt.Printf("Elapsed:           %.2fs\n", elapsed.Seconds())
	fmt.Printf("Throughput:        %.2f req/s\n", float64(stats.Total)/elapsed.Seconds())

	fmt.Println("\n------------- RESPONSE TIMES -------------")
	fmt.Printf("Average: %v\n", avg)
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P90:     %v\n", percentile(sorted, 90))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))

	fmt.Println("\n------------- STATUS CODES -------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n------------- LEVELS -------------")
	for _, level := range levels {
		fmt.Printf("%-12s: %d\n", level, stats.LevelCounts[level])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n------------- TRANSPORT ERRORS -------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
