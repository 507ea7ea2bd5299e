package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/cartpole-guard/internal/server"
)

// #region main
func main() {
	addr := flag.String("addr", envOr("GUARD_ADDR", "localhost:50061"), "gRPC listen address")
	metricsAddr := flag.String("metrics-addr", envOr("GUARD_METRICS_ADDR", ""), "Prometheus /metrics listen address (empty disables)")
	limitsPath := flag.String("limits", envOr("GUARD_LIMITS", ""), "path to limits YAML (empty uses defaults)")
	dbPath := flag.String("db", envOr("GUARD_DB", ""), "path to check_log.db (empty disables provenance)")
	flag.Parse()

	fmt.Println("Cart-pole safety guard ready.")
	fmt.Printf("  Addr: %s | Limits: %s | DB: %s\n", *addr, orDefault(*limitsPath), orDefault(*dbPath))

	err := server.Run(server.Options{
		Addr:        *addr,
		MetricsAddr: *metricsAddr,
		LimitsPath:  *limitsPath,
		DBPath:      *dbPath,
	})
	if err != nil {
		log.Fatalf("guardd: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v string) string {
	if v == "" {
		return "(default)"
	}
	return v
}

// #endregion helpers
