package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/conexa/starwars-api/internal/core/domain"
)

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type mongoMovie struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	EpisodeID    int                `bson:"episode_id"`
	OpeningCrawl string             `bson:"opening_crawl"`
	Director     string             `bson:"director"`
	Producer     string             `bson:"producer"`
	ReleaseDate  string             `bson:"release_date"`
	CreatedAt    int64              `bson:"created_at"`
}

func (mm *mongoMovie) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:           mm.ID.Hex(),
		Title:        mm.Title,
		EpisodeID:    mm.EpisodeID,
		OpeningCrawl: mm.OpeningCrawl,
		Director:     mm.Director,
		Producer:     mm.Producer,
		ReleaseDate:  mm.ReleaseDate,
		CreatedAt:    unixToTime(mm.CreatedAt),
	}
}

func toMongoMovie(m *domain.Movie) mongoMovie {
	return mongoMovie{
		Title:        m.Title,
		EpisodeID:    m.EpisodeID,
		OpeningCrawl: m.OpeningCrawl,
		Director:     m.Director,
		Producer:     m.Producer,
		ReleaseDate:  m.ReleaseDate,
		CreatedAt:    m.CreatedAt.Unix(),
	}
}

// Create inserts a movie. The unique episode_id index is the backstop when a
// concurrent writer inserts the same episode between check and insert; its
// violation maps to domain.ErrMovieExists.
func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoMovie(movie))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMovieExists
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *movie
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MovieRepository) FindByEpisodeID(ctx context.Context, episodeID int) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{"episode_id": episodeID}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie by episode: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var mm mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie by id: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []domain.Movie
	for cursor.Next(ctx) {
		var mm mongoMovie
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, *mm.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) Update(ctx context.Context, id string, movie *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	doc := toMongoMovie(movie)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":         doc.Title,
		"episode_id":    doc.EpisodeID,
		"opening_crawl": doc.OpeningCrawl,
		"director":      doc.Director,
		"producer":      doc.Producer,
		"release_date":  doc.ReleaseDate,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMovieExists
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMovieNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// EnsureIndexes creates the unique episode_id index — the natural-key
// constraint the sync job relies on as its race backstop.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "episode_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
