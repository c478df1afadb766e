package main

import (
	"context"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики генератора, собираются тем же prometheus, что и сервис
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Количество запросов к сервису по эндпоинту и коду ответа",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса к сервису в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"endpoint"})
)

type endpoint struct {
	name   string
	method string
	path   string
	auth   bool
}

var endpoints = []endpoint{
	{name: "ping", method: http.MethodGet, path: "/ping"},
	{name: "healthcheck", method: http.MethodHead, path: "/healthcheck"},
	{name: "orders_list", method: http.MethodGet, path: "/orders", auth: true},
	{name: "orders_available", method: http.MethodGet, path: "/orders/available", auth: true},
}

func main() {
	target := getenv("TRAFFIC_TARGET", "http://localhost:8080")
	token := os.Getenv("TRAFFIC_TOKEN")
	interval := time.Second
	if v, err := strconv.Atoi(os.Getenv("TRAFFIC_INTERVAL_MS")); err == nil && v > 0 {
		interval = time.Duration(v) * time.Millisecond
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e := endpoints[rand.IntN(len(endpoints))]
			if e.auth && token == "" {
				continue
			}
			hit(ctx, client, target, token, e)
		}
	}
}

func hit(ctx context.Context, client *http.Client, target, token string, e endpoint) {
	req, err := http.NewRequestWithContext(ctx, e.method, target+e.path, nil)
	if err != nil {
		log.Printf("build request %s: %v", e.name, err)
		return
	}
	if e.auth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(e.name).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(e.name, "error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(e.name, strconv.Itoa(resp.StatusCode)).Inc()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
