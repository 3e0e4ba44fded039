package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"google.golang.org/api/option"

	"github.com/scancare/backend/internal/config"
	"github.com/scancare/backend/internal/handlers"
	"github.com/scancare/backend/internal/secrets"
	"github.com/scancare/backend/internal/services"
)

// firebaseWebConfig is the client config secret; only the web API key
// is needed server-side (for the password sign-in REST call).
type firebaseWebConfig struct {
	APIKey string `json:"apiKey"`
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Startup secrets: Firebase service-account key, Firebase client
	// config, and the storage bucket service-account key.
	sec, err := secrets.NewClient(ctx)
	if err != nil {
		log.Fatalf("secrets: %v", err)
	}
	firebaseKey, err := sec.Access(ctx, cfg.ProjectID, cfg.FirebaseKeySecret, cfg.SecretVersion)
	if err != nil {
		log.Fatalf("secrets: %v", err)
	}
	firebaseConfJSON, err := sec.Access(ctx, cfg.ProjectID, cfg.FirebaseConfigSecret, cfg.SecretVersion)
	if err != nil {
		log.Fatalf("secrets: %v", err)
	}
	storageKey, err := sec.Access(ctx, cfg.ProjectID, cfg.StorageKeySecret, cfg.SecretVersion)
	if err != nil {
		log.Fatalf("secrets: %v", err)
	}
	sec.Close()

	var firebaseConf firebaseWebConfig
	if err := json.Unmarshal(firebaseConfJSON, &firebaseConf); err != nil {
		log.Fatalf("firebase config secret: %v", err)
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.ProjectID},
		option.WithCredentialsJSON(firebaseKey),
	)
	if err != nil {
		log.Fatalf("firebase app: %v", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}
	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer firestoreClient.Close()

	gcsClient, err := storage.NewClient(ctx, option.WithCredentialsJSON(storageKey))
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer gcsClient.Close()

	// Services
	accounts := services.NewFirebaseAuth(authClient)
	signIn := services.NewIdentitySignIn(firebaseConf.APIKey)
	profiles := services.NewFirestoreProfiles(firestoreClient)
	photos := services.NewGCSPhotoStore(gcsClient, cfg.PhotoBucket)

	// Handlers
	authHandler := handlers.NewAuthHandler(accounts, signIn, profiles)
	profileHandler := handlers.NewProfileHandler(profiles, photos, cfg.MaxUploadSizeMB)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Post("/ping", authHandler.Ping)

	r.Route("/userProfile/{userID}", func(r chi.Router) {
		r.Get("/", profileHandler.GetProfile)
		r.Put("/", profileHandler.UpdateProfile)
	})

	r.Post("/upload", profileHandler.Upload)

	log.Printf("Profile API server starting on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
