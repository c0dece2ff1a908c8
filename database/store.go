package database

import (
	"context"
	"fmt"

	"gestaobikes/schemas"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	STORE_MONGO  = "mongo"
	STORE_MYSQL  = "mysql"
	STORE_MEMORY = "memory"

	TABLE_CONTACTS      = "Gestao de contatos"
	TABLE_BIKES         = "Catálogo_bikes"
	TABLE_SALES         = "vendas"
	TABLE_STAGE_CHANGES = "historico_estagios"
)

// Store groups the tables the service works with.
type Store struct {
	Contacts     Table[schemas.Contact]
	Bikes        Table[schemas.Bike]
	Sales        Table[schemas.Sale]
	StageChanges Table[schemas.StageChange]

	close func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func NewMemoryStore() *Store {
	return &Store{
		Contacts:     NewMemoryTable[schemas.Contact](),
		Bikes:        NewMemoryTable[schemas.Bike](),
		Sales:        NewMemoryTable[schemas.Sale](),
		StageChanges: NewMemoryTable[schemas.StageChange](),
	}
}

func OpenMongoStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to MongoDB: %v", ErrUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: failed to ping MongoDB: %v", ErrUnavailable, err)
	}

	db := client.Database(dbName)
	return &Store{
		Contacts:     NewMongoTable[schemas.Contact](db, TABLE_CONTACTS),
		Bikes:        NewMongoTable[schemas.Bike](db, TABLE_BIKES),
		Sales:        NewMongoTable[schemas.Sale](db, TABLE_SALES),
		StageChanges: NewMongoTable[schemas.StageChange](db, TABLE_STAGE_CHANGES),
		close:        client.Disconnect,
	}, nil
}

func OpenMySQLStore(ctx context.Context, uri string) (*Store, error) {
	db, err := OpenMySQL(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &Store{
		Contacts:     NewSQLTable(db, TABLE_CONTACTS, ContactCodec),
		Bikes:        NewSQLTable(db, TABLE_BIKES, BikeCodec),
		Sales:        NewSQLTable(db, TABLE_SALES, SaleCodec),
		StageChanges: NewSQLTable(db, TABLE_STAGE_CHANGES, StageChangeCodec),
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}

// Open connects the backend named by kind.
func Open(ctx context.Context, kind, mongoURI, mongoDB, mysqlURI string) (*Store, error) {
	switch kind {
	case STORE_MONGO:
		return OpenMongoStore(ctx, mongoURI, mongoDB)
	case STORE_MYSQL:
		return OpenMySQLStore(ctx, mysqlURI)
	case STORE_MEMORY:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}
