package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ZanzyTHEbar/number-o-meter/internal/config"
)

func TestAnalyzeEndpoint_Performance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	r := setupApp(t).router

	// Largest exact integer and a highly composite number dominate the cost
	testInputs := []string{
		"9007199254740991",
		"9007199254740881",
		"735134400",
		"1e15",
		"-123456.789",
	}

	var totalDuration time.Duration
	for _, input := range testInputs {
		body, _ := json.Marshal(map[string]string{"input": input})

		start := time.Now()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/analyze", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		duration := time.Since(start)

		totalDuration += duration

		assert.Equal(t, http.StatusOK, w.Code, "input %s", input)
		assert.True(t, duration < 5*time.Second, "Request should complete within 5 seconds, took %v", duration)
	}

	averageDuration := totalDuration / time.Duration(len(testInputs))
	t.Logf("Performance test completed: %d requests, average response time: %v", len(testInputs), averageDuration)
	assert.True(t, averageDuration < 2*time.Second, "Average response time should be under 2 seconds")
}

func TestCompareEndpoint_LoadTest(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping load test in short mode")
	}

	r := setupApp(t).router

	const workers = 10
	const perWorker = 5

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = make(map[int]int)
	)

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				target := fmt.Sprintf("/api/compare?a=%d&b=%d", 360*(worker+1), 84*(j+1))

				w := httptest.NewRecorder()
				req, _ := http.NewRequest("GET", target, nil)
				req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1234", worker, j)
				r.ServeHTTP(w, req)

				mu.Lock()
				statuses[w.Code]++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(start)
	t.Logf("Load test completed: %d requests in %v", workers*perWorker, elapsed)

	assert.Equal(t, workers*perWorker, statuses[http.StatusOK])
	assert.True(t, elapsed < 10*time.Second, "Load test should finish under 10 seconds")
}

func BenchmarkAnalyzeEndpoint(b *testing.B) {
	gin.SetMode(gin.TestMode)
	a, err := newApp(context.Background(), config.Default())
	if err != nil {
		b.Fatal(err)
	}
	defer a.close()

	body := []byte(`{"input":"600851475143"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/analyze", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:1234", (i/250)%250, i%250)
		a.router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}
