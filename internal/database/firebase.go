package database

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// FirebaseClient Firebase Realtime Databaseクライアントのラッパー
type FirebaseClient struct {
	Database *db.Client
}

// NewFirebaseClient 環境変数からFirebaseアプリを初期化してRealtime Databaseクライアントを作成
func NewFirebaseClient(ctx context.Context) (*FirebaseClient, error) {
	databaseURL := os.Getenv("FIREBASE_DATABASE_URL")
	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")

	if databaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL環境変数が設定されていません")
	}

	conf := &firebase.Config{
		DatabaseURL: databaseURL,
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("Firebaseアプリの初期化に失敗: %w", err)
	}

	database, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("Realtime Databaseクライアントの初期化に失敗: %w", err)
	}

	return &FirebaseClient{
		Database: database,
	}, nil
}

// HealthCheck クライアントの初期化状態を確認する
func (fc *FirebaseClient) HealthCheck() error {
	if fc.Database == nil {
		return fmt.Errorf("Realtime Databaseクライアントが初期化されていません")
	}
	return nil
}
