package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"planner/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController,
	linkController *controllers.LinkController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Trips
	mux.HandleFunc("POST /trips", tripController.CreateTrip)
	mux.HandleFunc("GET /trips/{tripID}", tripController.GetTrip)
	mux.HandleFunc("GET /trips/{tripID}/confirm", tripController.ConfirmTrip)

	// Participants
	mux.HandleFunc("POST /trips/{tripID}/invites", participantController.InviteParticipant)
	mux.HandleFunc("GET /trips/{tripID}/participants", participantController.ListParticipants)
	mux.HandleFunc("GET /participants/{participantID}/confirm", participantController.ConfirmParticipant)

	// Activities
	mux.HandleFunc("POST /trips/{tripID}/activities", activityController.CreateActivity)
	mux.HandleFunc("GET /trips/{tripID}/activities", activityController.ListActivities)

	// Links
	mux.HandleFunc("POST /trips/{tripID}/links", linkController.CreateLink)
	mux.HandleFunc("GET /trips/{tripID}/links", linkController.ListLinks)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
