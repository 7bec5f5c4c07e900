package api

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"autokomis/backoffice/internal/common"
	"autokomis/backoffice/internal/db"
	"autokomis/backoffice/internal/db/repositories"
	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/metrics"
	"autokomis/backoffice/internal/services"
	"autokomis/backoffice/internal/store"
	"autokomis/backoffice/internal/store/filestore"
)

type Repositories struct {
	Cars  store.CarStore
	Leads *repositories.LeadRepository
}

type Services struct {
	Cache      common.CacheService
	ListingMir *common.ListingCache
	Listing    *services.ListingService
	Leads      *services.LeadService
	Reviews    *services.ReviewsService
	Session    *common.SessionService
	URLSigner  *common.URLSignerService
	Upload     *common.UploadService
	Mailer     *common.MailerService
	Places     *common.PlacesClient
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Redis    *redis.Client
}

// InitDependencies wires repositories and services. The car store backend is
// chosen exactly once here, from CAR_STORE; everything downstream sees only
// the CarStore interface.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	carStore := newCarStore()

	repos := &Repositories{
		Cars:  carStore,
		Leads: repositories.NewLeadRepository(db.DB),
	}

	cacheSvc := common.NewCacheService(60, 600)
	listingMirror := common.NewListingCache(cacheSvc, 5*time.Minute)

	redisClient := common.NewRedisClient()
	sessionSvc := common.NewSessionService(redisClient)
	urlSigner := common.NewURLSignerService([]byte(os.Getenv("UPLOAD_SIGNING_SECRET")), redisClient)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "data/uploads"
	}
	uploadSvc := common.NewUploadService(uploadDir, "/uploads", 0)

	mailerSvc := common.NewMailerService()
	placesClient := common.NewPlacesClient()

	svcs := &Services{
		Cache:      *cacheSvc,
		ListingMir: listingMirror,
		Listing:    services.NewListingService(carStore),
		Leads:      services.NewLeadService(repos.Leads, mailerSvc),
		Reviews:    services.NewReviewsService(cacheSvc, placesClient, time.Hour),
		Session:    sessionSvc,
		URLSigner:  urlSigner,
		Upload:     uploadSvc,
		Mailer:     mailerSvc,
		Places:     placesClient,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		Redis:    redisClient,
	}, nil
}

func newCarStore() store.CarStore {
	if os.Getenv("CAR_STORE") == "file" {
		path := os.Getenv("CARS_FILE")
		if path == "" {
			path = "data/cars.json"
		}
		logging.Info("using flat-file car store", "path", path)
		return filestore.New(path, os.Getenv("CARS_SEED_FILE"))
	}

	logging.Info("using postgres car store")
	return repositories.NewCarRepository(db.PgDB)
}
