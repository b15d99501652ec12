package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"parksarthi_backend/internal/app/router"
	bookingadapters "parksarthi_backend/internal/feature/booking/adapters"
	bookinghandler "parksarthi_backend/internal/feature/booking/transport/handler"
	bookingusecase "parksarthi_backend/internal/feature/booking/usecase"
	"parksarthi_backend/internal/feature/chat/adapters/gemini"
	chathandler "parksarthi_backend/internal/feature/chat/transport/handler"
	chatusecase "parksarthi_backend/internal/feature/chat/usecase"
	"parksarthi_backend/internal/feature/directions/adapters/mappls"
	directionshandler "parksarthi_backend/internal/feature/directions/transport/handler"
	directionsusecase "parksarthi_backend/internal/feature/directions/usecase"
	documentadapters "parksarthi_backend/internal/feature/documents/adapters"
	"parksarthi_backend/internal/feature/documents/adapters/vision"
	documenthandler "parksarthi_backend/internal/feature/documents/transport/handler"
	documentusecase "parksarthi_backend/internal/feature/documents/usecase"
	inquiryadapters "parksarthi_backend/internal/feature/inquiry/adapters"
	inquiryhandler "parksarthi_backend/internal/feature/inquiry/transport/handler"
	inquiryusecase "parksarthi_backend/internal/feature/inquiry/usecase"
	parkingadapters "parksarthi_backend/internal/feature/parking/adapters"
	parkinghandler "parksarthi_backend/internal/feature/parking/transport/handler"
	parkingusecase "parksarthi_backend/internal/feature/parking/usecase"
	"parksarthi_backend/internal/feature/phoneauth/adapters/challengestore"
	"parksarthi_backend/internal/feature/phoneauth/adapters/devotp"
	"parksarthi_backend/internal/feature/phoneauth/adapters/identitytoolkit"
	phoneauthentity "parksarthi_backend/internal/feature/phoneauth/domain/entity"
	phoneauthhandler "parksarthi_backend/internal/feature/phoneauth/transport/handler"
	phoneauthusecase "parksarthi_backend/internal/feature/phoneauth/usecase"
	usersadapters "parksarthi_backend/internal/feature/users/adapters"
	userhandler "parksarthi_backend/internal/feature/users/transport/handler"
	usersusecase "parksarthi_backend/internal/feature/users/usecase"
	wallethandler "parksarthi_backend/internal/feature/wallet/transport/handler"
	walletusecase "parksarthi_backend/internal/feature/wallet/usecase"
	"parksarthi_backend/internal/platform/cache"
	infradb "parksarthi_backend/internal/platform/db"
	platformhttp "parksarthi_backend/internal/platform/http"
	jwtplatform "parksarthi_backend/internal/platform/jwt"
	infraredis "parksarthi_backend/internal/platform/redis"
	"parksarthi_backend/internal/shared/geo"
	"parksarthi_backend/internal/shared/ratelimiter"
)

const spotCacheTTL = 30 * time.Second

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := usersadapters.NewUserPostgres(db)
	bookingRepo := bookingadapters.NewBookingPostgres(db)
	documentRepo := documentadapters.NewDocumentPostgres(db)
	spotRepo := parkingadapters.NewSpotPostgres(db)
	stationRepo := parkingadapters.NewStationPostgres(db)
	inquiryRepo := inquiryadapters.NewInquiryPostgres(db)

	// Spot availability changes continuously, so the cache window is short.
	cachedSpots := cache.NewCachingSpotRepository(rdb, spotCacheTTL, spotRepo)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)
	walletUC := walletusecase.NewWalletUsecase(userRepo, nil)
	bookingUC := bookingusecase.NewBookingUsecase(bookingRepo, walletUC)
	parkingUC := parkingusecase.NewParkingUsecase(cachedSpots, stationRepo)
	inquiryUC := inquiryusecase.NewInquiryUsecase(inquiryRepo)
	documentUC := documentusecase.NewDocumentUsecase(documentRepo, newTextScanner(ctx))
	directionsUC := newDirectionsUsecase()
	bot := chatusecase.NewChatbot(newChatCompleter(ctx))

	// Phone auth: the hosted provider when a Firebase key is present, the
	// local Redis-backed issuer otherwise.
	if rdb == nil {
		log.Fatal("Redis is required for OTP challenge storage")
	}
	var issuer phoneauthusecase.ChallengeIssuer
	if itCfg := identitytoolkit.LoadConfig(); itCfg.APIKey != "" {
		limiter := ratelimiter.NewRateLimiter(30, time.Minute)
		issuer = identitytoolkit.NewClient(itCfg, platformhttp.NewHTTPClient(itCfg.Timeout), limiter)
	} else {
		log.Println("[WARN] FIREBASE_API_KEY is not set. OTP codes will be logged, not sent.")
		issuer = devotp.NewIssuer(rdb, 0, 0)
	}
	store := challengestore.NewStore(rdb, "challenge", 5*time.Minute)
	tokens := jwtplatform.NewGenerator(os.Getenv(jwtplatform.EnvKeyJWTSecret), 24*time.Hour)

	// Every verified session flows through the listener, which provisions the
	// durable user record off the request path.
	sessions := make(chan *phoneauthentity.AuthSession, 16)
	listener := phoneauthusecase.NewListener(
		phoneauthusecase.ProvisionerFunc(func(ctx context.Context, s *phoneauthentity.AuthSession) error {
			_, err := userUC.EnsureUser(ctx, s.UID, s.PhoneNumber, s.Name, s.Email)
			return err
		}),
		func(s *phoneauthentity.AuthSession) {
			if s != nil {
				slog.Info("auth state changed", "uid", s.UID)
			}
		},
	)
	go listener.Run(ctx, sessions)

	// Handler
	h := router.Handlers{
		PhoneAuth: phoneauthhandler.NewPhoneAuthHandler(issuer, store, tokens, func(s *phoneauthentity.AuthSession) {
			sessions <- s
		}),
		Users:      userhandler.NewUserHandler(userUC),
		Wallet:     wallethandler.NewWalletHandler(walletUC),
		Bookings:   bookinghandler.NewBookingHandler(bookingUC),
		Parking:    parkinghandler.NewParkingHandler(parkingUC),
		Directions: directionshandler.NewDirectionsHandler(directionsUC),
		Chat:       chathandler.NewChatHandler(bot),
		Documents:  documenthandler.NewDocumentHandler(documentUC),
		Inquiries:  inquiryhandler.NewInquiryHandler(inquiryUC),
	}

	r := router.NewRouter(h)

	if os.Getenv(jwtplatform.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

// newDirectionsUsecase assembles the route provider and the map rendering
// fallback chain from the Mappls configuration.
func newDirectionsUsecase() directionshandler.DirectionsUsecase {
	cfg := mappls.LoadConfig()

	var provider directionsusecase.RouteProvider
	if cfg.APIKey != "" {
		provider = mappls.NewClient(cfg, platformhttp.NewHTTPClient(cfg.Timeout))
	} else {
		log.Println("[WARN] MAPPLS_API_KEY is not set. Directions will use straight-line estimates.")
	}

	chain := directionsusecase.NewChain(
		&directionsusecase.InteractiveStrategy{MapKey: cfg.APIKey},
		&directionsusecase.EmbedStrategy{MapKey: cfg.APIKey},
		&directionsusecase.StaticStrategy{},
	)

	locator := directionsusecase.NewTimeoutLocator(directionsusecase.NewFixedLocator(), 0, geo.IndoreCenter)

	return directionsusecase.NewDirectionsUsecase(locator, provider, chain)
}

// newChatCompleter returns the Gemini completer, or an always-failing one so
// the chatbot degrades to its canned apology instead of crashing.
func newChatCompleter(ctx context.Context) chatusecase.ChatCompleter {
	completer, err := gemini.NewGeminiCompleter(ctx)
	if err != nil {
		log.Println("[WARN] Gemini unavailable. Chatbot will reply with a fallback message.", err)
		return chatusecase.ChatCompleterFunc(func(ctx context.Context, prompt string) (string, error) {
			return "", err
		})
	}
	return completer
}

// newTextScanner returns the Vision OCR scanner, or nil to skip scanning.
func newTextScanner(ctx context.Context) documentusecase.TextScanner {
	scanner, err := vision.NewVisionTextScanner(ctx)
	if err != nil {
		log.Println("[WARN] Vision API unavailable. Document text scanning disabled.", err)
		return nil
	}
	return scanner
}
