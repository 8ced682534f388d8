package mongo

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/hashid/pkg/filter"
)

// Store is a sink that saves events with the fingerprint as _id.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns a Store writing to coll.
func NewStore(coll *mongo.Collection) (*Store, error) {
	if coll == nil {
		return nil, ErrNilCollection
	}
	return &Store{coll: coll}, nil
}

func (s *Store) Name() string { return "mongo" }

// Write inserts ev under id. A duplicate _id means the event is already
// stored and is not an error.
func (s *Store) Write(ctx context.Context, id string, ev filter.Event) error {
	doc, err := toDocument(id, ev)
	if err != nil {
		return errors.Join(ErrInsertFailed, err)
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return errors.Join(ErrInsertFailed, err)
	}
	return nil
}

// Ping checks the primary of the collection's client.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.coll.Database().Client().Ping(ctx, nil); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

// Get returns the stored event for id without its _id field. The document
// goes back through relaxed extended JSON so nested values are plain maps
// and numbers are json.Number, as DecodeEvent produces them.
func (s *Store) Get(ctx context.Context, id string) (filter.Event, bool, error) {
	raw, err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	ev, err := fromDocument(raw)
	if err != nil {
		return nil, false, err
	}
	return ev, true, nil
}

func fromDocument(raw bson.Raw) (filter.Event, error) {
	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, err
	}
	ev, err := filter.DecodeEvent(data)
	if err != nil {
		return nil, err
	}
	delete(ev, "_id")
	return ev, nil
}

// toDocument converts ev through relaxed extended JSON so that numbers keep
// a numeric BSON type instead of the decoder's string form.
func toDocument(id string, ev filter.Event) (bson.M, error) {
	raw, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return nil, err
	}
	doc["_id"] = id
	return doc, nil
}
