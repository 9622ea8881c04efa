package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"HelloMoon-App/internal/database"
	"HelloMoon-App/internal/handler"
	fsinfra "HelloMoon-App/internal/infrastructure/firestore"
	"HelloMoon-App/internal/infrastructure/maps"
	"HelloMoon-App/internal/infrastructure/payment"
	"HelloMoon-App/internal/repository"
	"HelloMoon-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	databaseURL := os.Getenv("FIREBASE_DATABASE_URL")
	mapsAPIKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	stripeSecretKey := os.Getenv("STRIPE_SECRET_KEY")

	if projectID == "" || databaseURL == "" || mapsAPIKey == "" || stripeSecretKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数:")
		fmt.Println("  FIRESTORE_PROJECT_ID")
		fmt.Println("  FIREBASE_DATABASE_URL")
		fmt.Println("  GOOGLE_MAPS_API_KEY")
		fmt.Println("  STRIPE_SECRET_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	// 外部APIクライアントはプロセス起動時に1度だけ構築し、以後は変更しない
	fmt.Println("Initializing Firebase Realtime Database client...")
	firebaseClient, err := database.NewFirebaseClient(ctx)
	if err != nil {
		log.Fatalf("Firebaseクライアント初期化失敗: %v", err)
	}
	if err := firebaseClient.HealthCheck(); err != nil {
		log.Fatalf("Firebaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Firebase connection successful!")

	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	geocoder := maps.NewGoogleGeocodingProvider(mapsAPIKey)
	payments := payment.NewStripePaymentProvider(stripeSecretKey)

	// リポジトリの初期化
	shopRepo := repository.NewRealtimeDBShopRepository(firebaseClient.Database)
	userRepo := repository.NewRealtimeDBUserRepository(firebaseClient.Database)
	cardRepo := repository.NewRealtimeDBCardRepository(firebaseClient.Database)
	geoIndexRepo := repository.NewFirestoreGeoIndexRepository(firestoreClient.GetClient())

	// ユースケースの初期化
	shopLocationUseCase := usecase.NewShopLocationUseCase(geocoder, shopRepo, geoIndexRepo)
	provisioningUseCase := usecase.NewCustomerProvisioningUseCase(payments, userRepo)
	paymentSourceUseCase := usecase.NewPaymentSourceUseCase(payments, userRepo, cardRepo)

	// ハンドラーの初期化
	shopEventsHandler := handler.NewShopEventsHandler(shopLocationUseCase)
	authEventsHandler := handler.NewAuthEventsHandler(provisioningUseCase)
	paymentSourceHandler := handler.NewPaymentSourceHandler(paymentSourceUseCase)

	// ルーティングの設定
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "HelloMoon-App"})
	})

	// レコードストア・認証プロバイダのトリガーを受けるフック
	router.POST("/hooks/shops/address-created", shopEventsHandler.AddressCreated)
	router.POST("/hooks/shops/address-updated", shopEventsHandler.AddressUpdated)
	router.POST("/hooks/auth/user-created", authEventsHandler.UserCreated)

	// 支払い方法の公開エンドポイント
	router.POST("/payments/cards", paymentSourceHandler.AttachCard)
	router.POST("/payments/cards/remove", paymentSourceHandler.RemoveCard)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("HelloMoon-App server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
