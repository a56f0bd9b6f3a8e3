package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
)

const snapshotCollection = "snapshots"

// MongoStore keeps snapshots as documents in a MongoDB collection,
// keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB instance at url and uses the
// "snapshots" collection in database db. The connection is verified
// with a ping before returning.
func NewMongoStore(ctx context.Context, url, db string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	coll := client.Database(db).Collection(snapshotCollection)
	// Snapshot names are the primary lookup key.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create snapshot index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Save upserts the document under name, preserving CreatedAt when the
// snapshot already exists.
func (s *MongoStore) Save(ctx context.Context, name string, doc io.Document) (Snapshot, error) {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return Snapshot{}, err
	}

	var prev *Snapshot
	if existing, err := s.Load(ctx, name); err == nil {
		prev = &existing
	}

	snap := stamp(name, doc, prev)
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"name": name},
		snap,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return snap, nil
}

// Load retrieves the snapshot stored under name.
func (s *MongoStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&snap)
	if err == mongo.ErrNoDocuments {
		return Snapshot{}, notFound(name)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return snap, nil
}

// List returns metadata for every stored snapshot, sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]Info, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer cur.Close(ctx)

	var infos []Info
	for cur.Next(ctx) {
		var snap Snapshot
		if err := cur.Decode(&snap); err != nil {
			continue
		}
		infos = append(infos, infoOf(snap))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return infos, nil
}

// Delete removes the snapshot stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
