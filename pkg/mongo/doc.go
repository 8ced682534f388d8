// Package mongo stores fingerprinted events in MongoDB.
//
// New connects with the settings in Config and retries on failure.
// NewCollection also resolves Config.Database and Config.Collection.
//
// Store is a pipeline sink. Each event becomes one document whose _id is the
// fingerprint. Inserting an event that is already present hits the _id
// unique index, and that duplicate-key error is swallowed:
//
//	coll, err := mongo.NewCollection(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store, _ := mongo.NewStore(coll)
//	proc, _ := pipeline.New(f, pipeline.WithSinks(store))
//
// Store.Ping backs the readiness probe.
package mongo
