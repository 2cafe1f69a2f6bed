package main

import (
	"log"
	"net/http"
	"os"

	"phishscan/detect"
	"phishscan/features"
	"phishscan/oracle"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Get port from environment (for cloud deployment) or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "model/phishing_forest.json"
	}
	model, err := oracle.LoadForest(modelPath)
	if err != nil {
		log.Fatalf("model load failed (%s): %v", modelPath, err)
	}

	var opts []features.Option
	if server := os.Getenv("DNS_SERVER"); server != "" {
		opts = append(opts, features.WithResolver(features.NewDNSResolver(server)))
	}
	fetcher := features.NewHTTPFetcher()
	fetcher.AllowRendered = os.Getenv("SKIP_CHROMEDP") != "true"
	opts = append(opts, features.WithFetcher(fetcher))

	detector := detect.New(features.NewExtractor(opts...), model)

	// Detection endpoints
	http.HandleFunc("/predict", detector.PredictHandler)
	http.HandleFunc("/", detect.RootHandler)

	log.Printf("✅ phishscan service listening on :%s\n", port)
	log.Println("📍 Endpoints:")
	log.Println("   GET /predict?url=...  - Classify a URL")
	log.Println("   GET /                 - Service info")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
