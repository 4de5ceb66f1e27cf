package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiobackend/internal/database"
	"aiobackend/internal/models"
	"aiobackend/internal/utils"
)

// NewsFilter narrows a listing query. A nil Featured means no filtering on
// that field.
type NewsFilter struct {
	Featured *bool
}

type NewsRepository interface {
	Insert(ctx context.Context, item *models.NewsItem) (string, error)
	Find(ctx context.Context, filter NewsFilter, limit int64) ([]models.NewsItem, error)
	FindByID(ctx context.Context, id string) (*models.NewsItem, error)
}

type newsRepository struct {
	db database.Service
}

// NewNewsRepository accepts a nil db service; every call then reports
// ErrStoreUnavailable so the server can run without a configured store.
func NewNewsRepository(db database.Service) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) collection() *mongo.Collection {
	return r.db.Database().Collection(database.NewsCollection)
}

func (r *newsRepository) available() bool {
	return r.db != nil && r.db.Client() != nil
}

func (r *newsRepository) Insert(ctx context.Context, item *models.NewsItem) (string, error) {
	queryType := "insert"
	repository := "news"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	if !r.available() {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return "", ErrStoreUnavailable
	}

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	res, err := r.collection().InsertOne(ctx, item)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return "", fmt.Errorf("failed to insert news item: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return item.ID.Hex(), nil
	}
	return oid.Hex(), nil
}

func (r *newsRepository) Find(ctx context.Context, filter NewsFilter, limit int64) ([]models.NewsItem, error) {
	queryType := "find"
	repository := "news"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	if !r.available() {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, ErrStoreUnavailable
	}

	query := bson.M{}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	cursor, err := r.collection().Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error fetching news items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.NewsItem{}
	if err := cursor.All(ctx, &items); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding news items: %w", err)
	}
	return items, nil
}

func (r *newsRepository) FindByID(ctx context.Context, id string) (*models.NewsItem, error) {
	queryType := "findByID"
	repository := "news"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if !r.available() {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, ErrStoreUnavailable
	}

	var item models.NewsItem
	err = r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching news item: %w", err)
	}
	return &item, nil
}
