package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient 地理空間インデックスを保持するFirestoreクライアントのラッパー
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient プロジェクトIDと認証情報からクライアントを初期化する
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	credentialsFile := os.Getenv("FIREBASE_CREDENTIALS_PATH")

	var client *firestore.Client
	var err error

	if credentialsFile == "" {
		// ホスティング環境ではデフォルト認証を使用
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("✅ Firestore client initialized for project: %s", projectID)
	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
