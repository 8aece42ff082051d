package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"soberSipAPI/handlers"
	"soberSipAPI/internal/notification"
	"soberSipAPI/internal/store"
	"soberSipAPI/middleware"
	"soberSipAPI/services"
)

var (
	dbPool              *pgxpool.Pool
	localStore          *store.SQLiteStore
	userService         *services.UserService
	drinkLogService     *services.DrinkLogService
	onboardingService   *services.OnboardingService
	preferenceService   *services.PreferenceService
	contentService      *services.ContentService
	notificationService *services.NotificationService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	clerkSecretKey := os.Getenv("CLERK_SECRET_KEY")
	if clerkSecretKey == "" {
		log.Fatal("CLERK_SECRET_KEY environment variable is not set")
	}
	clerk.SetKey(clerkSecretKey)
	log.Println("Clerk initialized successfully")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}
	log.Println("Successfully connected to Postgres")

	localPath := os.Getenv("LOCAL_STORE_PATH")
	if localPath == "" {
		localPath = "./preferences.db"
	}
	localStore, err = store.NewSQLiteStore(localPath)
	if err != nil {
		log.Fatal("Failed to open local preference store:", err)
	}
	log.Printf("Local preference store at %s", localPath)

	notificationService = services.NewNotificationService(dbPool)
	userService = services.NewUserService(dbPool)
	drinkLogService = services.NewDrinkLogService(dbPool, notificationService)
	onboardingService = services.NewOnboardingService(dbPool, userService)
	preferenceService = services.NewPreferenceService(dbPool, localStore)
	contentService = services.NewContentService()

	fcmService, err := notification.NewFCMService("./serviceAccountKey.json")
	if err != nil {
		log.Printf("Warning: Could not initialize FCM: %v", err)
	} else {
		notificationService.SetPushProvider(fcmService)
		log.Println("FCM Push Provider initialized successfully")
	}

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
		localStore.Close()
	}()

	userHandler := handlers.NewUserHandler(userService, drinkLogService, preferenceService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, drinkLogService)
	contentHandler := handlers.NewContentHandler(contentService, preferenceService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	webhookHandler := handlers.NewWebhookHandler(userService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "soberSip-api"}`))
	}).Methods("GET")

	r.HandleFunc("/webhooks/clerk", webhookHandler.HandleClerkWebhook).Methods("POST")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public content routes: daily rotation is a pure function of the
	// date, no identity needed.
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuthMiddleware)
	public.HandleFunc("/content/quote-of-the-day", contentHandler.GetQuoteOfTheDay).Methods("GET")
	public.HandleFunc("/content/workout-of-the-day", contentHandler.GetWorkoutOfTheDay).Methods("GET")
	public.HandleFunc("/content/quotes", contentHandler.GetQuotes).Methods("GET")
	public.HandleFunc("/content/workouts", contentHandler.GetWorkouts).Methods("GET")
	public.HandleFunc("/content/articles", contentHandler.GetArticles).Methods("GET")
	public.HandleFunc("/content/workouts/{workoutID}/burn-a-drink", contentHandler.BurnADrink).Methods("GET")
	public.HandleFunc("/onboarding/steps", onboardingHandler.GetSteps).Methods("GET")
	public.HandleFunc("/onboarding/projection", onboardingHandler.GetProjection).Methods("GET")

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.ClerkAuthMiddleware)

	protected.HandleFunc("/user", userHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/user/update-profile", userHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/user/delete-account", userHandler.DeleteAccount).Methods("DELETE")
	protected.HandleFunc("/user/drink-log", userHandler.AddDrinkLog).Methods("POST")
	protected.HandleFunc("/user/drink-log", userHandler.GetDrinkLogs).Methods("GET")
	protected.HandleFunc("/user/streak", userHandler.GetStreak).Methods("GET")
	protected.HandleFunc("/user/stats", userHandler.GetUserStats).Methods("GET")

	protected.HandleFunc("/onboarding/start", onboardingHandler.Start).Methods("POST")
	protected.HandleFunc("/onboarding/advance", onboardingHandler.Advance).Methods("POST")
	protected.HandleFunc("/onboarding/answers", onboardingHandler.GetAnswers).Methods("GET")

	protected.HandleFunc("/preferences/settings", preferenceHandler.GetSettings).Methods("GET")
	protected.HandleFunc("/preferences/settings", preferenceHandler.UpdateSettings).Methods("PUT")
	protected.HandleFunc("/preferences/tracking-consent", preferenceHandler.GetTrackingConsent).Methods("GET")
	protected.HandleFunc("/preferences/tracking-consent", preferenceHandler.UpdateTrackingConsent).Methods("PUT")

	protected.HandleFunc("/content/completed-tasks", contentHandler.GetCompletedTasks).Methods("GET")
	protected.HandleFunc("/content/completed-tasks", contentHandler.MarkTaskCompleted).Methods("POST")

	protected.HandleFunc("/notifications/register-device", notificationHandler.RegisterDevice).Methods("POST")
	protected.HandleFunc("/notifications/test", notificationHandler.SendTestNotification).Methods("POST")

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
