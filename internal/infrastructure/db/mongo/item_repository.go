package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minimart/storefront/internal/core/domain"
)

const (
	collectionItems    = "items"
	collectionCounters = "counters"
)

// ItemRepository implements ports.ItemRepository on MongoDB. Item IDs are
// small sequential integers allocated from a counters document, matching the
// positive-integer item references the cart contract expects.
type ItemRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{
		col:      db.Collection(collectionItems),
		counters: db.Collection(collectionCounters),
	}
}

type mongoItem struct {
	ID        int     `bson:"_id"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Stock     int     `bson:"stock"`
	CreatedAt int64   `bson:"created_at"`
	UpdatedAt int64   `bson:"updated_at"`
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoItem{
		ID:        id,
		Name:      item.Name,
		Price:     item.Price,
		Stock:     item.Stock,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return toDomainItem(doc), nil
}

func (r *ItemRepository) CreateMany(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	created := make([]domain.Item, 0, len(items))
	for i := range items {
		item, err := r.Create(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		created = append(created, *item)
	}
	return created, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return toDomainItem(doc), nil
}

func (r *ItemRepository) List(ctx context.Context, page, limit int) ([]domain.Item, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]domain.Item, 0, limit)
	for cursor.Next(ctx) {
		var doc mongoItem
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, *toDomainItem(doc))
	}
	return items, total, cursor.Err()
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       item.Name,
		"price":      item.Price,
		"stock":      item.Stock,
		"updated_at": time.Now().UTC().Unix(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": item.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrItemNotFound
	}
	return r.FindByID(ctx, item.ID)
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// nextID atomically increments the item counter document.
func (r *ItemRepository) nextID(ctx context.Context) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "items"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate item id: %w", err)
	}
	return counter.Seq, nil
}

func toDomainItem(doc mongoItem) *domain.Item {
	return &domain.Item{
		ID:        doc.ID,
		Name:      doc.Name,
		Price:     doc.Price,
		Stock:     doc.Stock,
		CreatedAt: unixToTime(doc.CreatedAt),
		UpdatedAt: unixToTime(doc.UpdatedAt),
	}
}
