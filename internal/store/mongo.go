package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chitrashala_backend/internal/domain"
)

// Collection names.
const (
	usersColl      = "users"
	categoriesColl = "categories"
	wallpapersColl = "wallpapers"
)

// mongoUsers is the MongoDB-backed UserStore.
type mongoUsers struct {
	coll *mongo.Collection
}

// NewMongoUsers returns a UserStore over the users collection.
func NewMongoUsers(db *mongo.Database) UserStore {
	return &mongoUsers{coll: db.Collection(usersColl)}
}

func (s *mongoUsers) Insert(ctx context.Context, u *domain.User) error {
	res, err := s.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate // Unique index on email
	}
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// mongoCategories is the MongoDB-backed CategoryStore.
type mongoCategories struct {
	coll *mongo.Collection
}

// NewMongoCategories returns a CategoryStore over the categories collection.
func NewMongoCategories(db *mongo.Database) CategoryStore {
	return &mongoCategories{coll: db.Collection(categoriesColl)}
}

func (s *mongoCategories) Insert(ctx context.Context, c *domain.Category) error {
	res, err := s.coll.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate // Unique index on name
	}
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoCategories) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	var c domain.Category
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *mongoCategories) FindByNameFold(ctx context.Context, name string) (*domain.Category, error) {
	// Anchored case-insensitive match, name quoted so it is never treated
	// as a pattern.
	filter := bson.M{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}}
	var c domain.Category
	err := s.coll.FindOne(ctx, filter).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *mongoCategories) List(ctx context.Context) ([]domain.Category, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var cats []domain.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// mongoWallpapers is the MongoDB-backed WallpaperStore.
type mongoWallpapers struct {
	coll *mongo.Collection
}

// NewMongoWallpapers returns a WallpaperStore over the wallpapers collection.
func NewMongoWallpapers(db *mongo.Database) WallpaperStore {
	return &mongoWallpapers{coll: db.Collection(wallpapersColl)}
}

func (s *mongoWallpapers) Insert(ctx context.Context, w *domain.Wallpaper) error {
	res, err := s.coll.InsertOne(ctx, w)
	if err != nil {
		return err
	}
	w.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoWallpapers) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Wallpaper, error) {
	var w domain.Wallpaper
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *mongoWallpapers) List(ctx context.Context, categoryID *primitive.ObjectID, skip, limit int64) ([]domain.Wallpaper, error) {
	filter := bson.M{}
	if categoryID != nil {
		filter["category_id"] = *categoryID
	}
	opts := options.Find().SetSort(bson.D{{Key: "upload_date", Value: -1}})
	if skip > 0 {
		opts = opts.SetSkip(skip)
	}
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var ws []domain.Wallpaper
	if err := cur.All(ctx, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *mongoWallpapers) AddLike(ctx context.Context, wallpaperID, userID primitive.ObjectID) error {
	return s.updateOne(ctx, wallpaperID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *mongoWallpapers) RemoveLike(ctx context.Context, wallpaperID, userID primitive.ObjectID) error {
	return s.updateOne(ctx, wallpaperID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *mongoWallpapers) IncrementDownloads(ctx context.Context, wallpaperID primitive.ObjectID) error {
	return s.updateOne(ctx, wallpaperID, bson.M{"$inc": bson.M{"download_count": 1}})
}

// updateOne applies a single atomic update operator to one wallpaper.
func (s *mongoWallpapers) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
