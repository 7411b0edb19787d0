package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/meowcal/internal/repo/models"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
	"github.com/nikmy/meowcal/pkg/mongotools"
)

var (
	collectionIndex = mongo.IndexModel{
		Keys: bson.D{
			{Key: models.SelectionFieldUser, Value: 1},
			{Key: models.SelectionFieldPickedAt, Value: -1},
		},
		Options: options.Index().SetName("user_picked_at"),
	}

	newestFirst = bson.D{{Key: models.SelectionFieldPickedAt, Value: -1}}
)

func newMongo(
	ctx context.Context,
	cfg MongoConfig,
	log logger.Logger,
) (*mongoRepo, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize).SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	_, err = collection.Indexes().CreateOne(ctx, collectionIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create index")
	}

	return &mongoRepo{
		coll: collection,
		log:  log.With("mongo_repo"),
	}, nil
}

type mongoRepo struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m *mongoRepo) Save(ctx context.Context, s models.Selection) error {
	_, err := m.coll.InsertOne(ctx, s)
	return errors.WrapFail(err, "insert selection")
}

func (m *mongoRepo) Last(ctx context.Context, userID int64) (*models.Selection, error) {
	r := m.coll.FindOne(
		ctx,
		mongotools.Field(models.SelectionFieldUser, &userID),
		options.FindOne().SetSort(newestFirst),
	)

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find last selection")
	}

	var s models.Selection
	err = r.Decode(&s)
	if err != nil {
		return nil, errors.WrapFail(err, "decode selection")
	}

	return &s, nil
}

func (m *mongoRepo) List(ctx context.Context, userID int64, filters ...Filter) ([]models.Selection, error) {
	f := applyFilters(filters)

	query := mongotools.And(
		mongotools.Field(models.SelectionFieldUser, &userID),
		mongotools.Field(models.SelectionFieldWidget, f.widget),
		mongotools.Field(models.SelectionFieldYear, f.year),
	)

	cur, err := m.coll.Find(
		ctx,
		query,
		options.Find().SetSort(newestFirst).SetLimit(int64(f.limit)),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find selections")
	}

	selected, err := mongotools.FilterFunc(ctx, cur, f.match)
	return selected, errors.WrapFail(err, "read selections")
}

func (m *mongoRepo) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
