package detect

import (
	"encoding/json"
	"log"
	"net/http"
)

// PredictHandler serves GET /predict?url=...
func (d *Detector) PredictHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		http.Error(w, "url query parameter is required", http.StatusBadRequest)
		return
	}

	verdict, err := d.Classify(r.Context(), raw)
	if err != nil {
		log.Printf("[predict] %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	log.Printf("[predict] %s -> %s (%.2f)", verdict.URL, verdict.Prediction, verdict.Confidence)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verdict)
}

// RootHandler serves the service banner.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Phishing URL Detection API"})
}
