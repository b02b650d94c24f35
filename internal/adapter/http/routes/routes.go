package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"trilha_vertical/internal/adapter/cache"
	"trilha_vertical/internal/adapter/http/handlers"
	"trilha_vertical/internal/adapter/http/middleware"
	repository2 "trilha_vertical/internal/adapter/persistence/repository"
	"trilha_vertical/internal/infrastructure/database"
	"trilha_vertical/internal/infrastructure/payments"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase"
	"trilha_vertical/internal/usecase/interfaces"
	"trilha_vertical/internal/usecase/processor"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const (
	PORT            = 8080
	processedEvtTTL = 72 * time.Hour
)

// Run will start the server
func Run() {
	logging.Init("booking-api", "./logs/app.log")

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	couponRepo := repository2.NewCouponDynamoRepository(ddb)

	couponUseCase := usecase.NewCouponUseCase(couponRepo)

	pixGateway, err := payments.NewMercadoPagoPixGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("PIX gateway not configured: %v", err)
	}
	checkoutGateway, err := payments.NewMercadoPagoCheckoutGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("checkout gateway not configured: %v", err)
	}
	cryptoGateway, err := payments.NewCryptoHTTPGateway()
	if err != nil {
		log.Fatalf("crypto gateway not configured: %v", err)
	}
	sponsorsGateway, err := payments.NewGitHubSponsorsGateway(os.Getenv("GITHUB_SPONSORED_ACCOUNT"))
	if err != nil {
		log.Fatalf("sponsors gateway not configured: %v", err)
	}

	procs := usecase.Processors{
		Pix:         processor.NewPixProcessor(pixGateway),
		Checkout:    processor.NewCheckoutProcessor(checkoutGateway),
		Crypto:      processor.NewCryptoProcessor(cryptoGateway),
		Sponsorship: processor.NewSponsorshipProcessor(sponsorsGateway),
		WhatsApp:    processor.NewWhatsAppProcessor(os.Getenv("WHATSAPP_BUSINESS_PHONE")),
	}

	createOrderUseCase := usecase.NewCreateOrderUseCase(orderRepo, couponUseCase, procs)
	reconciliationUseCase := usecase.NewReconciliationUseCase(orderRepo, cryptoGateway, connectEventStore())

	orderHandler := handlers.NewOrderHandler(createOrderUseCase, reconciliationUseCase)
	couponHandler := handlers.NewCouponHandler(couponUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconciliationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, orderHandler, couponHandler, webhookHandler)
}

// connectEventStore wires the Redis-backed webhook dedup store. Reconciliation
// tolerates a nil store: the order state machine still refuses illegal moves,
// dedup just saves redundant writes.
func connectEventStore() interfaces.IProcessedEventStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("REDIS_ADDR not set; webhook dedup disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable; webhook dedup disabled: %v", err)
		return nil
	}
	return cache.NewRedisProcessedEventStore(rdb, processedEvtTTL)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Recovery())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.Logging(logging.New("http")))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
