package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/valyala/fasthttp"

	"traffic-engine/internal/engine"
	"traffic-engine/internal/handler"
	"traffic-engine/internal/report"
)

func main() {
	if port := os.Getenv("PORT"); port != "" {
		log.Printf("Traffic engine starting on port %s", port)
		if err := fasthttp.ListenAndServe(":"+port, handler.HandleEvaluation); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	trimmed := strings.TrimSpace(string(input))
	if trimmed == "" {
		report.RenderUsage(os.Stdout)
		return
	}

	rep := engine.Process(strings.Split(trimmed, "\n"))
	report.Render(os.Stdout, rep)
}
