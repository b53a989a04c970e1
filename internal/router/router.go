package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "breed-registry/docs"
	"breed-registry/internal/adapters/auth/basic"
	mem "breed-registry/internal/adapters/storage/memory"
	pg "breed-registry/internal/adapters/storage/postgres"
	"breed-registry/internal/config"
	"breed-registry/internal/domain/admins"
	"breed-registry/internal/domain/animals"
	"breed-registry/internal/domain/breeders"
	"breed-registry/internal/domain/breeding"
	"breed-registry/internal/domain/identifiers"
	"breed-registry/internal/domain/public"
	"breed-registry/internal/middleware"
	"breed-registry/internal/platform/logger"
	"breed-registry/internal/platform/metrics"
	"breed-registry/internal/platform/password"
	"breed-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// AuthMode "dev" acepta el header X-Debug-User-ID sin verificar (solo
	// para desarrollo). Cualquier otro valor, vacío incluido, usa
	// AuthVerifier o, si es nil, HTTP Basic contra los admins.
	AuthMode     string
	AuthVerifier auth.AuthVerifier

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Cache de lecturas públicas; nil = sin cache.
	Cache    public.Cache
	CacheTTL time.Duration

	StaticDir   string
	CORSOrigins []string
	BcryptCost  int
	Clock       clockwork.Clock
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics(m))
	r.Use(corsHandler(opts.CORSOrigins))

	var (
		breederRepo  breeders.Repository
		animalRepo   animals.Repository
		breedingRepo breeding.Repository
		adminRepo    admins.Repository
	)
	if opts.DB != nil {
		breederRepo = pg.NewBreedersRepo(opts.DB)
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		breedingRepo = pg.NewBreedingRepo(opts.DB)
		adminRepo = pg.NewAdminsRepo(opts.DB)
	} else {
		st := mem.NewStore()
		breederRepo = mem.NewBreederRepo(st)
		animalRepo = mem.NewAnimalRepo(st)
		breedingRepo = mem.NewBreedingRepo(st)
		adminRepo = mem.NewAdminRepo(st)
	}

	// Services por módulo
	hasher := password.NewHasher(opts.BcryptCost)
	alloc := identifiers.NewAllocator(opts.Clock, m)

	breedersSvc := breeders.NewService(breederRepo, alloc, hasher)
	breedersSvc.OnStatusChange(func(s breeders.Status) { m.BreederStatus(string(s)) })
	animalsSvc := animals.NewService(animalRepo, breedersSvc, alloc)
	breedingSvc := breeding.NewService(breedingRepo, breedersSvc, animalsSvc)
	adminsSvc := admins.NewService(adminRepo, breedersSvc, animalsSvc, hasher)
	publicSvc := public.NewService(animalsSvc, opts.Cache, opts.CacheTTL, log)

	verifier := opts.AuthVerifier
	if verifier == nil && opts.AuthMode != config.AuthModeDev {
		verifier = basic.NewVerifier(adminsSvc)
	}
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", healthHandler(opts.DB))
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	breeders.RegisterRoutes(r, breedersSvc)
	animals.RegisterRoutes(r, animalsSvc)
	breeding.RegisterRoutes(r, breedingSvc)
	admins.RegisterRoutes(r, adminsSvc)
	public.RegisterRoutes(r, publicSvc)

	if dir := opts.StaticDir; dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			log.Warn("static dir not found, front end disabled", map[string]any{"dir": dir})
		}
	}

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				middleware.LoggerFrom(r.Context()).Error("health: db ping failed", map[string]any{"error": err})
				http.Error(w, "db unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.DebugUserHeader, chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
	})
	return c.Handler
}
