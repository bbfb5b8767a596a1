package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aaprotein/farmdesk/internal/service/metrics"
)

// Archiver defines the outbound sink for end-of-day summary snapshots. The
// archive is write-only: live state stays in memory and is never restored
// from here.
type Archiver interface {
	ArchiveDailySummary(ctx context.Context, summary metrics.DailySummary) error
}

// SummaryArchiveEntry is the document shape stored per archived day. Cash
// figures are stored as decimal strings since the driver knows nothing about
// decimal.Decimal.
type SummaryArchiveEntry struct {
	Date          string    `bson:"date"`
	TotalBirds    int       `bson:"total_birds"`
	EggsCollected int       `bson:"eggs_collected"`
	FeedUsedKg    float64   `bson:"feed_used_kg"`
	Mortality     int       `bson:"mortality"`
	CashInward    string    `bson:"cash_inward"`
	CashOutward   string    `bson:"cash_outward"`
	NetCashFlow   string    `bson:"net_cash_flow"`
	CreatedAt     time.Time `bson:"created_at"`
}

// MongoDBArchive implements Archiver on top of MongoDB.
type MongoDBArchive struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBArchive connects and verifies the MongoDB archive target.
func NewMongoDBArchive(ctx context.Context, uri string, dbName string) (*MongoDBArchive, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBArchive{
		client:   client,
		dbName:   dbName,
		collName: "daily_summaries",
	}, nil
}

// ArchiveDailySummary appends one summary snapshot document.
func (r *MongoDBArchive) ArchiveDailySummary(ctx context.Context, summary metrics.DailySummary) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	entry := SummaryArchiveEntry{
		Date:          summary.Date,
		TotalBirds:    summary.TotalBirds,
		EggsCollected: summary.EggsCollected,
		FeedUsedKg:    summary.FeedUsedKg,
		Mortality:     summary.Mortality,
		CashInward:    summary.CashInward.String(),
		CashOutward:   summary.CashOutward.String(),
		NetCashFlow:   summary.NetCashFlow.String(),
		CreatedAt:     time.Now(),
	}
	if _, err := collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert daily summary: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBArchive) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
